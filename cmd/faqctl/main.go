// faqctl is an offline helper around the FAQ matching engine.
//
//	faqctl check <file>            validate a FAQ document and print a summary
//	faqctl query <file> <text...>  run a query against a FAQ document
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MagloireKITIO/chatbot-file/internal/faq"
	"github.com/MagloireKITIO/chatbot-file/internal/nlp"

	"go.uber.org/zap"
)

const matchThreshold = 50

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	path := os.Args[2]

	kb, err := faq.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "faqctl: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "check":
		questions := 0
		for _, cat := range kb.Categories {
			questions += len(cat.Questions)
			fmt.Printf("%-30s %d questions\n", cat.Name, len(cat.Questions))
		}
		fmt.Printf("OK: %d categories, %d questions\n", len(kb.Categories), questions)

	case "query":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		input := strings.Join(os.Args[3:], " ")

		matcher := nlp.NewMatcher(matchThreshold, zap.NewNop())
		formatter := nlp.NewFormatter(zap.NewNop())

		match, err := matcher.FindBestMatch(kb, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "faqctl: %v\n", err)
			os.Exit(1)
		}
		if match != nil {
			fmt.Printf("Match [%s] %s (score %.1f)\n\n", match.Question.ID, match.Question.Question, match.Score)
			fmt.Println(formatter.Format(match.Question.Answer))
			return
		}

		fmt.Println("No match. Suggestions:")
		for _, s := range matcher.Suggest(kb, input, 3) {
			fmt.Printf("  - %s\n", s)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: faqctl check <file> | faqctl query <file> <text...>")
}
