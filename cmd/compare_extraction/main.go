package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

var backends = []pdf.TextBackend{pdf.BackendLedongthuc, pdf.BackendDslipak, pdf.BackendFitz}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: compare_extraction <pdf-file> [page]")
		os.Exit(1)
	}

	pdfPath := os.Args[1]
	pageNum := 1
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 1 {
			log.Fatalf("Invalid page number %q", os.Args[2])
		}
		pageNum = n
	}

	fmt.Printf("Page %d of %s\n", pageNum, pdfPath)

	texts := make(map[pdf.TextBackend]string)
	for _, backend := range backends {
		text, err := pageText(pdfPath, backend, pageNum-1)
		if err != nil {
			fmt.Printf("\n[%s] error: %v\n", backend, err)
			continue
		}
		texts[backend] = text
		fmt.Printf("\n[%s] %d chars, %d lines\n", backend, len(text), strings.Count(text, "\n")+1)
		fmt.Println(text)
	}

	fmt.Println("\nAgreement with ledongthuc:")
	ref, ok := texts[pdf.BackendLedongthuc]
	if !ok {
		fmt.Println("  no reference text")
		return
	}
	for _, backend := range backends[1:] {
		text, ok := texts[backend]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s identical=%v same-words=%v\n", backend, text == ref, sameWords(text, ref))
	}
}

func pageText(path string, backend pdf.TextBackend, index int) (string, error) {
	doc, err := pdf.OpenText(path, backend)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	page, err := doc.GetPage(index)
	if err != nil {
		return "", err
	}
	text, err := page.ExtractText()
	return strings.TrimSpace(text), err
}

// sameWords ignores whitespace and line layout differences
func sameWords(a, b string) bool {
	return strings.Join(strings.Fields(a), " ") == strings.Join(strings.Fields(b), " ")
}
