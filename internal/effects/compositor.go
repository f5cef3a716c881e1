package effects

// Composite copies src into dst through prog. Without a program the copy is
// unmodified; that is the documented fallback, not a failure.
func Composite(b Blitter, src, dst Target, params ParameterTable, prog Program) {
	if prog == nil {
		b.Copy(src, dst)
		return
	}
	b.Draw(src, dst, prog, params)
}
