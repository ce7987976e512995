/*
Package pipeline implements the two batch operations of picture-helper:
ingestion and sorted copying.

# Ingestion

An Ingester reads each submitted path in order, decodes the picture, takes
the capture time from its EXIF tags and renders a thumbnail. Every picture
that decodes becomes an immutable Record with a unique DisplayKey. Files
that fail are logged and skipped; the batch always runs to the end.

# Copying

A Copier places each Record below the target directory:

	<TargetDir>/<YYYY-MM>/<YYYY-MM-DD_HH-MM>_<name>   capture time known
	<UnknownDateDir>/<name>                           capture time missing

Source files are never modified or removed and existing destination files
are never overwritten. Records whose destination already exists end up in
the skip list, which callers can feed back into a later ingestion.

# Threading

Run executes synchronously and invokes the Handler callbacks on the
calling goroutine, in submission order. Start runs the same loop on a new
goroutine and delivers Events over a channel instead; the receiver owns
its Batch and is the only one mutating it:

	events := ingester.Start(paths)
	for ev := range events {
	    if err := batch.Apply(ev); err != nil {
	        logging.Warn("%v", err)
	    }
	}

Neither pipeline supports cancellation, and callers must not run two
calls of the same kind over the same Batch at once.
*/
package pipeline
