// Package extract pulls plain text out of uploaded résumé files.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// Content types Text understands.
const (
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC   = "application/msword"
	MIMEPlain = "text/plain"
)

var (
	// ErrUnsupportedFormat is returned for content that is not PDF, DOCX or plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a document holds no extractable text.
	ErrEmptyDocument = errors.New("document contains no text")
)

var extensionTypes = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".doc":  MIMEDOC,
	".txt":  MIMEPlain,
}

// ContentType sniffs data and falls back to the extension of name when the content is ambiguous.
func ContentType(data []byte, name string) string {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(MIMEPDF):
		return MIMEPDF
	case mt.Is(MIMEDOCX):
		return MIMEDOCX
	case mt.Is(MIMEDOC):
		return MIMEDOC
	case mt.Is(MIMEPlain):
		return MIMEPlain
	}
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return t
	}
	return mt.String()
}

// Text returns the plain text of a PDF, DOCX or text document.
func Text(data []byte, name string) (string, error) {
	var (
		text string
		err  error
	)
	switch ContentType(data, name) {
	case MIMEPDF:
		text, err = pdfText(data)
	case MIMEDOCX:
		text, err = docxText(data)
	case MIMEPlain:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimetype.Detect(data).String())
	}
	if err != nil {
		return "", err
	}

	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func pdfText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}
	return string(b), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open docx body: %w", err)
		}
		defer func() { _ = rc.Close() }()
		return wordprocessingText(rc)
	}
	return "", fmt.Errorf("%w: docx without word/document.xml", ErrUnsupportedFormat)
}

// wordprocessingText walks WordprocessingML, keeping run text and turning paragraphs,
// breaks and tabs into whitespace.
func wordprocessingText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
