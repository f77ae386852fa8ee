package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	// ErrExtraction covers every failure to turn a document into usable text.
	ErrExtraction = errors.New("text extraction failed")
	// ErrUnsupportedFormat reports a file type with no registered decoder.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file type", ErrExtraction)
	// ErrNoText reports a decoder that ran but produced no readable text.
	ErrNoText = fmt.Errorf("%w: file contains no readable text", ErrExtraction)
)

type decoder func(data []byte) (string, error)

var decoders = map[string]decoder{
	"pdf":  extractTextFromPDF,
	"docx": extractTextFromDocx,
	"doc":  extractTextFromDocx,
	"txt":  extractTextFromTxt,
	"text": extractTextFromTxt,
	"rtf":  extractTextFromRTF,
}

// SupportedFormats lists the file type tags accepted by ExtractText.
func SupportedFormats() []string {
	return []string{"pdf", "docx", "doc", "txt", "rtf"}
}

// NormalizeFileType canonicalizes a declared file type tag: lower-case,
// trimmed, leading dots removed ("  .PDF" -> "pdf").
func NormalizeFileType(fileType string) string {
	return strings.TrimLeft(strings.TrimSpace(strings.ToLower(fileType)), ".")
}

// MimeType returns the MIME type for a supported file type tag, or
// application/octet-stream for anything else.
func MimeType(fileType string) string {
	switch NormalizeFileType(fileType) {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	case "txt", "text":
		return "text/plain"
	case "rtf":
		return "application/rtf"
	}
	return "application/octet-stream"
}

// ExtractText decodes a document blob into normalized plain text. The file
// type tag selects the decoder; an unknown tag is reported as
// ErrUnsupportedFormat and is never guessed from content. Decoders that run
// but yield only whitespace surface as ErrNoText.
func ExtractText(data []byte, fileType string) (string, error) {
	ext := NormalizeFileType(fileType)
	dec, ok := decoders[ext]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	text, err := dec(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	text = Normalize(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractTextFromPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables;
	// a corrupt upload must become an error, not a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		buf.WriteString(content)
		// Pages are separated by a blank line.
		buf.WriteString("\n\n")
	}
	return buf.String(), nil
}

var (
	reXMLTags    = regexp.MustCompile(`<[^>]+>`)
	xmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	body := string(docXML)
	// Paragraph and tab markers become whitespace, every other tag goes.
	body = strings.ReplaceAll(body, "</w:p>", "\n")
	body = strings.ReplaceAll(body, "<w:tab/>", "\t")
	body = reXMLTags.ReplaceAllString(body, " ")
	return xmlUnescaper.Replace(body), nil
}

func extractTextFromTxt(data []byte) (string, error) {
	// Invalid byte sequences are dropped rather than failing the request.
	return strings.ToValidUTF8(string(data), ""), nil
}

func extractTextFromRTF(data []byte) (string, error) {
	return rtfToText(strings.ToValidUTF8(string(data), "")), nil
}
