package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("Python developer\r\nSQL and Docker\r\n"))

	require.NoError(t, err)
	assert.Equal(t, "Python developer\nSQL and Docker", text)
}

func TestExtractTextMarkdown(t *testing.T) {
	text, err := ExtractText("resume.md", []byte("# Skills\n\nPython, SQL"))

	require.NoError(t, err)
	assert.Contains(t, text, "Python, SQL")
}

func TestExtractTextHTML(t *testing.T) {
	html := `<html><head><style>body { color: red }</style></head>
<body><h1>Jane Doe</h1><p>Python and SQL developer</p>
<script>alert("nope")</script></body></html>`

	text, err := ExtractText("resume.html", []byte(html))

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python and SQL developer")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.rtf", []byte("{\\rtf1}"))

	require.Error(t, err)
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "resume.rtf", unsupported.Filename)
}

func TestExtractTextDispatchIsCaseInsensitive(t *testing.T) {
	text, err := ExtractText("RESUME.TXT", []byte("Python"))

	require.NoError(t, err)
	assert.Equal(t, "Python", text)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf at all"))

	assert.Error(t, err)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip archive"))

	assert.Error(t, err)
}

func TestStripDocxTags(t *testing.T) {
	content := "<w:p><w:r><w:t>Python developer</w:t></w:r></w:p>"

	stripped := stripDocxTags(content)

	assert.Contains(t, stripped, "Python developer")
	assert.NotContains(t, stripped, "<w:")
}
