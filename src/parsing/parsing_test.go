package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptMarkdown(t *testing.T) {
	t.Run("paragraphs and emphasis", func(t *testing.T) {
		html := ParseScriptContent("INTRO\n\nWelcome back to *the show*.", ScriptMarkdown)
		assert.Contains(t, html, "<p>INTRO</p>")
		assert.Contains(t, html, "<em>the show</em>")
	})
	t.Run("hard wraps keep cue lines separate", func(t *testing.T) {
		html := ParseScriptContent("HOST: Hello\nGUEST: Hi", ScriptMarkdown)
		assert.Contains(t, html, "<br")
	})
	t.Run("raw html is escaped", func(t *testing.T) {
		html := ParseScriptContent("<script>alert('hi')</script>", ScriptMarkdown)
		assert.NotContains(t, html, "<script>")
	})
	t.Run("gfm strikethrough", func(t *testing.T) {
		html := ParseScriptContent("~~cut this line~~", ScriptMarkdown)
		assert.Contains(t, html, "<del>cut this line</del>")
	})
}
