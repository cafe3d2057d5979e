package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pyhub-apps/pdf-image-extractor/pkg/imaging"
	"github.com/pyhub-apps/pdf-image-extractor/pkg/pdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: benchmark <pdf-file>")
		os.Exit(1)
	}

	pdfPath := os.Args[1]

	// Warm-up run
	doc, err := pdf.OpenText(pdfPath, pdf.BackendAuto)
	if err != nil {
		log.Fatalf("Failed to open PDF: %v", err)
	}
	doc.Close()

	fmt.Printf("=== PDF Image Extractor Benchmark ===\n")
	fmt.Printf("File: %s\n", pdfPath)

	// Text extraction per backend
	for _, backend := range []pdf.TextBackend{pdf.BackendLedongthuc, pdf.BackendDslipak, pdf.BackendFitz} {
		start := time.Now()
		doc, err := pdf.OpenText(pdfPath, backend)
		if err != nil {
			fmt.Printf("%-11s open failed: %v\n", backend, err)
			continue
		}
		var totalTextLen, failed int
		for i := 0; i < doc.PageCount(); i++ {
			page, err := doc.GetPage(i)
			if err != nil {
				failed++
				continue
			}
			text, err := page.ExtractText()
			if err != nil {
				failed++
				continue
			}
			totalTextLen += len(text)
		}
		elapsed := time.Since(start)
		fmt.Printf("%-11s pages=%d chars=%d failed=%d time=%v\n", backend, doc.PageCount(), totalTextLen, failed, elapsed)
		doc.Close()
	}

	// Image enumeration
	start := time.Now()
	src, err := pdf.OpenImageSource(pdfPath)
	if err != nil {
		log.Fatalf("Failed to open PDF for images: %v", err)
	}
	defer src.Close()
	openTime := time.Since(start)

	var raws int
	var rawBytes int64
	var decodeTime, resizeTime, encodeTime time.Duration
	start = time.Now()
	for i := 0; i < src.PageCount(); i++ {
		images, err := src.PageImages(i)
		if err != nil {
			log.Printf("page %d: %v", i+1, err)
			continue
		}
		for _, raw := range images {
			raws++
			rawBytes += int64(len(raw.Data))

			t := time.Now()
			img, _, err := imaging.Decode(raw.Data)
			decodeTime += time.Since(t)
			if err != nil {
				continue
			}

			t = time.Now()
			resized := imaging.Resize(img)
			resizeTime += time.Since(t)

			t = time.Now()
			_ = imaging.Encode(io.Discard, resized, "jpg", 95)
			encodeTime += time.Since(t)
		}
	}
	enumTime := time.Since(start)

	fmt.Printf("\nImage source open time: %v\n", openTime)
	fmt.Printf("Images: %d (%d bytes)\n", raws, rawBytes)
	fmt.Printf("Enumerate+process time: %v\n", enumTime)
	fmt.Printf("  decode: %v\n  resize: %v\n  encode: %v\n", decodeTime, resizeTime, encodeTime)
	if enumTime > 0 {
		fmt.Printf("Images/sec: %.2f\n", float64(raws)/enumTime.Seconds())
	}
}
