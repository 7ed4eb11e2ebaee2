package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/etnz/amortizer"
	"github.com/etnz/amortizer/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// explainCmd asks Gemini to explain a loan in plain words.
type explainCmd struct {
	model    string
	currency string
	offline  bool
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "explain in plain words what a loan will cost" }
func (*explainCmd) Usage() string {
	return `amortize [-method <method>] -amount <amount> -period <months> -rate <rate> explain [-model <model>] [-offline]

  Explains the loan, the selected method and how it compares with the other
  method. The explanation is written by Gemini when GEMINI_API_KEY or
  GOOGLE_API_KEY is set, otherwise a local explanation is printed.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", settings.Model, "Gemini model used to write the explanation.")
	f.StringVar(&c.currency, "c", "", "Currency used to display amounts.")
	f.BoolVar(&c.offline, "offline", false, "Do not call Gemini, print the local explanation.")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan, err := DecodeLoan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading loan: %v\n", err)
		return subcommands.ExitUsageError
	}
	fm, err := formatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	comparison, err := renderer.NewComparison(loan, fm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing methods: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.offline || !hasGeminiKey() {
		printMarkdown(localExplanation(method, comparison))
		return subcommands.ExitSuccess
	}

	text, err := askGemini(ctx, c.model, explanationPrompt(method, comparison))
	if err != nil {
		log.Warn("gemini call failed, using the local explanation", "err", err)
		text = localExplanation(method, comparison)
	}
	printMarkdown(text)
	return subcommands.ExitSuccess
}

func hasGeminiKey() bool {
	return os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != ""
}

// methodSummary returns the summary of method m in the comparison.
func methodSummary(m amortizer.Method, c *renderer.Comparison) renderer.MethodSummary {
	for _, s := range c.Methods {
		if s.Method == m.String() {
			return s
		}
	}
	return renderer.MethodSummary{}
}

func explanationPrompt(m amortizer.Method, c *renderer.Comparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain this loan to a borrower in clear and simple words.\n\n")
	fmt.Fprintf(&b, "LOAN:\n- Amount: %s\n- Annual interest rate: %s\n- Term: %d months (%.1f years)\n- Chosen method: %s\n\n",
		c.Amount, c.Rate, c.Period, float64(c.Period)/12, m)
	fmt.Fprintf(&b, "METHODS:\n")
	for _, s := range c.Methods {
		fmt.Fprintf(&b, "- %s: first payment %s, last payment %s, total cost %s, total interest %s\n",
			s.Method, s.FirstPayment, s.LastPayment, s.Summary.TotalCost, s.Summary.TotalInterestExpense)
	}
	fmt.Fprintf(&b, "\nINSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Explain how the %s method repays the loan.\n", m)
	fmt.Fprintf(&b, "2. Mention the monthly payments and the total interest with their amounts.\n")
	fmt.Fprintf(&b, "3. Compare with the other method, the %s method saves %s.\n", c.Cheapest, c.Savings)
	fmt.Fprintf(&b, "4. Write 3 or 4 sentences in markdown, no title.\n")
	return b.String()
}

// localExplanation is used when Gemini cannot be called.
func localExplanation(m amortizer.Method, c *renderer.Comparison) string {
	s := methodSummary(m, c)
	var b strings.Builder
	switch m {
	case amortizer.Straight:
		fmt.Fprintf(&b, "With the straight method you repay the same share of principal every month. ")
		fmt.Fprintf(&b, "Payments start at %s and decrease down to %s as the interest shrinks with the debt. ", s.FirstPayment, s.LastPayment)
	default:
		fmt.Fprintf(&b, "With the annuity method you pay the same %s every month. ", s.FirstPayment)
		fmt.Fprintf(&b, "Early payments are mostly interest, later ones mostly principal. ")
	}
	fmt.Fprintf(&b, "Over %d months the loan of %s costs %s in total, including %s of interest.\n\n",
		c.Period, c.Amount, s.Summary.TotalCost, s.Summary.TotalInterestExpense)
	if c.Cheapest == m.String() {
		fmt.Fprintf(&b, "It is the cheapest method for this loan, it saves %s compared to the other one.\n", c.Savings)
	} else {
		fmt.Fprintf(&b, "The %s method would save %s of interest, at the price of different monthly payments.\n", c.Cheapest, c.Savings)
	}
	return b.String()
}

// askGemini sends a single prompt to the model and returns its text answer.
func askGemini(ctx context.Context, model, prompt string) (string, error) {
	// the client reads GEMINI_API_KEY or GOOGLE_API_KEY from the environment.
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}}
	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini")
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	log.Debug("gemini answered", "model", model, "len", b.Len())
	return b.String(), nil
}
