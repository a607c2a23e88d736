// Command propctl decodes MAPI binary property values into annotated trees.
package main

func main() {
	execute()
}
