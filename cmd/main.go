package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ian-shakespeare/rpncalc/internal/interpret"
	"github.com/ian-shakespeare/rpncalc/pkg/array"
	"github.com/ian-shakespeare/rpncalc/pkg/iterator"
)

var (
	showInfix  = flag.Bool("infix", false, "print only the infix form")
	showValue  = flag.Bool("eval", false, "print only the value")
	showTokens = flag.Bool("tokens", false, "print the tokens of each expression")
	debug      = flag.Bool("debug", false, "log every token to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rpncalc: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rpncalc [flags] 'postfix expression'...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var opts []interpret.Option
	if *debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, interpret.WithLogger(logger))
	}

	both := !*showInfix && !*showValue
	failed := false
	for _, expression := range flag.Args() {
		if *showTokens {
			tokens, err := iterator.CollectUntilErr(interpret.Tokenize(expression))
			if err != nil {
				log.Print(err)
				failed = true
				continue
			}
			fmt.Println(array.Map(tokens, interpret.Token.String))
		}

		if *showValue || both {
			value, err := interpret.Evaluate(expression, opts...)
			if err != nil {
				log.Print(err)
				failed = true
				continue
			}
			fmt.Println(value)
		}

		if *showInfix || both {
			infix, err := interpret.ToInfix(expression, opts...)
			if err != nil {
				log.Print(err)
				failed = true
				continue
			}
			fmt.Println(infix)
		}
	}

	if failed {
		os.Exit(1)
	}
}
