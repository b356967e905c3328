package writer

// MemWriter captures scene bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteScene replaces the captured bytes with a copy of buf.
func (w *MemWriter) WriteScene(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
