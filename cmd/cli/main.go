package main

import (
	"context"
	"fmt"
	"os"

	"github.com/docudiff/docudiff/internal/controller"
	"github.com/docudiff/docudiff/internal/localengine"
	"github.com/docudiff/docudiff/internal/viewsync"
	"github.com/docudiff/docudiff/pkg/logging"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: docudiff original.pdf changed.pdf")
		os.Exit(1)
	}

	logging.InitLogger(os.Getenv("DOCUDIFF_DEBUG") == "1")

	eng := localengine.New(nil)
	ctrl := controller.New(eng, os.Args[1], os.Args[2], 0, viewsync.ImmediateScheduler{})

	if err := ctrl.CompareDocuments(context.Background()); err != nil {
		fmt.Printf("❌ Comparison failed: %v\n", err)
		os.Exit(1)
	}

	summaries := ctrl.Summaries()
	if len(summaries) == 0 {
		fmt.Println("✅ Documents are textually identical.")
		return
	}

	fmt.Printf("📋 Found %d change(s):\n\n", len(summaries))
	for _, s := range summaries {
		switch s.Kind {
		case "replaced":
			fmt.Printf("  ~ page %d: %q -> %q (%d words)\n",
				s.Page+1, s.DeleteText, s.InsertText, s.DeleteWords+s.InsertWords)
		case "deleted":
			fmt.Printf("  - page %d: %q (%d words)\n", s.Page+1, s.DeleteText, s.DeleteWords)
		case "inserted":
			fmt.Printf("  + page %d: %q (%d words)\n", s.Page+1, s.InsertText, s.InsertWords)
		}
	}
}
