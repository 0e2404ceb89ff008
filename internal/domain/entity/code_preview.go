package entity

// CodePreviewBatch is the advisory rendering of the codes a create batch is
// expected to receive. It is never authoritative: another session may consume
// ids between preview and save, and the engine does not correct for that.
type CodePreviewBatch struct {
	StartID int
	Count   int
	Codes   []string
	Display string
}
