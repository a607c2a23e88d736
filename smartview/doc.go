// Package smartview turns opaque binary property values into offset-annotated
// parse trees.
//
// Parse is the single entry point: it picks the parser registered for the
// selector, runs it over a fresh decoder and always returns a tree, even for
// truncated, corrupt or unrecognized input. Decode problems are recorded on
// the nodes where they happened (see block.Classify); the only error Parse
// returns is ErrNilBuffer.
//
//	root, err := smartview.Parse(types.ParserFolderUserFields, blob)
//	if err != nil {
//	    return err
//	}
//	printer.New(os.Stdout, printer.DefaultOptions()).Print(root)
//
// Parse keeps no state between calls and never writes to the buffer, so it is
// safe to call from multiple goroutines, including on the same buffer.
package smartview
