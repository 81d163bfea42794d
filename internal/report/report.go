package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"classbench/domain/classify"
	"classbench/models"
)

// Markdown renders an experiment as a human-readable markdown report.
func Markdown(e *models.Experiment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Experiment %s\n\n", e.ID)
	fmt.Fprintf(&b, "Run at %s with seed %d.\n\n", e.CreatedAt.Format("2006-01-02 15:04:05 MST"), e.Seed)

	fmt.Fprintf(&b, "## Data\n\n")
	fmt.Fprintf(&b, "- Training samples: %d, test samples: %d\n", e.TrainSize, e.TestSize)
	fmt.Fprintf(&b, "- Negative class: Normal(%.2f, %.2f), positive class: Normal(%.2f, %.2f), positive rate %.2f\n\n",
		e.Mixture.NegativeMean, e.Mixture.NegativeStd,
		e.Mixture.PositiveMean, e.Mixture.PositiveStd, e.Mixture.PositiveRate)

	fmt.Fprintf(&b, "## Threshold classifier (discriminative)\n\n")
	fmt.Fprintf(&b, "- Fitted threshold: %s\n", formatThreshold(e.Threshold.Model.Threshold))
	fmt.Fprintf(&b, "- Training errors: %d / %d\n", e.Threshold.Model.TrainingErrors, e.Threshold.Model.TrainingSize)
	fmt.Fprintf(&b, "- Test accuracy: %.4f\n", e.Threshold.TestAccuracy)
	writeConfusion(&b, e.Threshold.Confusion)

	fmt.Fprintf(&b, "## Gaussian classifier (generative)\n\n")
	fmt.Fprintf(&b, "- Negative class: mean %.3f, std %.3f, prior %.3f\n",
		e.Gaussian.Model.Negative.Mean, e.Gaussian.Model.Negative.StdDev, e.Gaussian.Model.Negative.Prior)
	fmt.Fprintf(&b, "- Positive class: mean %.3f, std %.3f, prior %.3f\n",
		e.Gaussian.Model.Positive.Mean, e.Gaussian.Model.Positive.StdDev, e.Gaussian.Model.Positive.Prior)
	fmt.Fprintf(&b, "- Test accuracy: %.4f\n", e.Gaussian.TestAccuracy)
	writeConfusion(&b, e.Gaussian.Confusion)

	fmt.Fprintf(&b, "## Verdict\n\n")
	fmt.Fprintf(&b, "Higher test accuracy: **%s**\n", e.Winner())

	return b.String()
}

func writeConfusion(b *strings.Builder, c classify.Confusion) {
	fmt.Fprintf(b, "- Confusion: TP %d, TN %d, FP %d, FN %d\n\n",
		c.TruePositives, c.TrueNegatives, c.FalsePositives, c.FalseNegatives)
}

func formatThreshold(threshold float64) string {
	if math.IsInf(threshold, -1) {
		return "-Inf (always predicts positive)"
	}
	if math.IsInf(threshold, 1) {
		return "+Inf (always predicts negative)"
	}
	return fmt.Sprintf("%.4f", threshold)
}

// HTML renders the markdown report as a standalone HTML fragment.
func HTML(e *models.Experiment) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(Markdown(e)))

	opts := html.RendererOptions{Flags: html.CommonFlags}
	renderer := html.NewRenderer(opts)
	return markdown.Render(doc, renderer)
}
