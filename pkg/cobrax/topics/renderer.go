package topics

// Renderer formats a help topic before it is printed. format is the
// topic file extension, e.g. ".md" or ".txt".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim. Used when no renderer is set.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
