package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/docsync"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	if len(c.Message) > 0 {
		return c.runOnce(deps)
	}
	return c.runInteractive(deps)
}

func (c *ChatCmd) runOnce(deps *Dependencies) error {
	req := c.Config.Request(strings.Join(c.Message, " "))
	if req.Model == "" {
		req.Model = docsync.DefaultModel
	}

	reply, err := deps.Chatter.Chat(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}

func (c *ChatCmd) runInteractive(deps *Dependencies) error {
	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	p := &prompter{ctx: ctx, out: deps.Stdout, lines: readLines(ctx, deps.Stdin)}

	fmt.Fprintln(deps.Stdout, "Local LLM Chat Client")

	model := c.Config.Model
	if model == "" {
		var ok bool
		model, ok = selectModel(ctx, deps, p)
		if !ok {
			return nil
		}
	}

	fmt.Fprintf(deps.Stdout, "\nUsing model: %s\n", model)
	fmt.Fprintln(deps.Stdout, "Type 'quit' or 'exit' to stop")
	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))

	for {
		input, ok := p.ask("\nYou: ")
		if !ok {
			fmt.Fprintln(deps.Stdout, "\nGoodbye!")
			return nil
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(deps.Stdout, "Goodbye!")
			return nil
		case "":
			continue
		}

		fmt.Fprint(deps.Stdout, "AI: ")

		req := c.Config.Request(input)
		req.Model = model
		reply, err := deps.Chatter.Chat(ctx, req)
		if err != nil {
			fmt.Fprintln(deps.Stdout)
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout, reply)
	}
}

// selectModel lists the server's models and asks the user to pick one.
// It reports false when there is nothing to pick or input ended.
func selectModel(ctx context.Context, deps *Dependencies, p *prompter) (string, bool) {
	models := docsync.ListModelsOrEmpty(ctx, deps.Chatter, deps.Logger)
	if len(models) == 0 {
		fmt.Fprintln(deps.Stdout, "No models available. Exiting.")
		return "", false
	}

	fmt.Fprintln(deps.Stdout, "\nAvailable models:")
	for i, m := range models {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, m.ID)
	}

	for {
		input, ok := p.ask("\nSelect model: ")
		if !ok {
			fmt.Fprintln(deps.Stdout, "\nGoodbye!")
			return "", false
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(deps.Stdout, "Please enter a valid number")
			continue
		}
		if n < 1 || n > len(models) {
			fmt.Fprintf(deps.Stdout, "Please enter a number between 1 and %d\n", len(models))
			continue
		}
		return models[n-1].ID, true
	}
}

// prompter writes prompts and waits for the next input line or cancellation.
type prompter struct {
	ctx   context.Context
	out   io.Writer
	lines <-chan string
}

// ask returns the next trimmed line. It reports false at end of input or
// when the context is cancelled.
func (p *prompter) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	select {
	case line, ok := <-p.lines:
		return strings.TrimSpace(line), ok
	case <-p.ctx.Done():
		return "", false
	}
}

// readLines streams lines from r until it is exhausted or ctx is done, so
// a pending read never blocks an interrupt.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func errorMessage(err error) string {
	if docsync.ErrorCode(err) == docsync.EINTERNAL {
		return err.Error()
	}
	return docsync.ErrorMessage(err)
}
