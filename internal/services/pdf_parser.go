package services

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	// ExtractPages returns the text of up to maxPages pages in order.
	// maxPages <= 0 reads the whole document.
	ExtractPages(filePath string, maxPages int) ([]string, error)
	// ExtractResumeText joins the first maxPages pages with a single space.
	// Blank text is returned as is; only an unreadable document is an error.
	ExtractResumeText(filePath string, maxPages int) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractPages implements PDFParserService.
func (p *pdfParserService) ExtractPages(filePath string, maxPages int) ([]string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	if maxPages > 0 && maxPages < totalPage {
		totalPage = maxPages
	}

	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep page positions stable; an unreadable page is empty.
			pages = append(pages, "")
			continue
		}

		pages = append(pages, text)
	}

	return pages, nil
}

// ExtractResumeText implements PDFParserService.
func (p *pdfParserService) ExtractResumeText(filePath string, maxPages int) (string, error) {
	pages, err := p.ExtractPages(filePath, maxPages)
	if err != nil {
		return "", err
	}

	return strings.Join(pages, " "), nil
}
