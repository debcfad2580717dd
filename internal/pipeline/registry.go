package pipeline

import "github.com/nao1215/zhipistat/internal/stats"

// Section headings of the report. They are always written, even when none
// of the columns of a section exist.
const (
	SectionFactual       = "A. 文档结构与定位字段（factual）"
	SectionDerived       = "B. 署名、日期与文本长度（derived; deterministic）"
	SectionProbabilistic = "C. 先验/概率字段（probabilistic; not ground truth）"
	SectionMissingness   = "D. 缺失值概览（missingness）"
)

// CoverageLimit is how many groups the top and bottom coverage tables list.
const CoverageLimit = 10

// Options tunes the report steps.
type Options struct {
	// TopN caps the rows of categorical tables.
	TopN int
	// CrossTabMaxCols caps the columns of the cross-tabulation.
	CrossTabMaxCols int
	// MissingTopN caps the rows of the missingness table.
	MissingTopN int
	// Charts adds a pie chart after each categorical table.
	Charts bool
}

// Steps returns the report steps for the comment dataset schema, in
// document order.
func Steps(opts Options) []Step {
	categorical := func(columns ...string) []Step {
		out := make([]Step, len(columns))
		for i, c := range columns {
			out[i] = NewCategoricalStep(c, opts.TopN, opts.Charts)
		}
		return out
	}
	numeric := func(columns ...string) []Step {
		out := make([]Step, len(columns))
		for i, c := range columns {
			out[i] = NewNumericStep(c, stats.DefaultPercentiles)
		}
		return out
	}
	textLengths := func(columns ...string) []Step {
		out := make([]Step, len(columns))
		for i, c := range columns {
			out[i] = NewTextLengthStep(c)
		}
		return out
	}

	var steps []Step
	add := func(s ...Step) { steps = append(steps, s...) }

	add(NewMetadataStep("comment_id"))

	add(NewHeadingStep("section:A", 2, SectionFactual))
	add(categorical("doc_part", "is_toc_entry", "section")...)
	add(NewCoverageStep("chapter_number", CoverageLimit))
	add(categorical("manuscript_version", "comment_type", "label_norm")...)
	add(NewCrossTabStep("manuscript_version", "comment_type", opts.CrossTabMaxCols))

	add(NewHeadingStep("section:B", 2, SectionDerived))
	add(NewFlagStep("has_signature", "署名识别概览"))
	add(categorical("signature_position", "signature_source", "signature_norm",
		"commenter_standard", "commenter_confidence")...)
	add(NewFlagStep("has_date", "日期识别概览"))
	add(categorical("date_ganzhi")...)
	add(numeric("date_year_est", "date_qianlong_year_est")...)
	add(categorical("comment_period_est")...)
	add(NewLengthStep("char_len", "comment_text_clean", "has_signature", stats.ExtendedPercentiles))
	add(NewBracketStep("bracket_spans_paragraphs", "doc_global_start", "doc_global_end",
		stats.ExtendedPercentiles, opts.Charts))
	add(textLengths("anchor_before", "anchor_after", "paragraph_main_text",
		"context_before_60", "context_after_60")...)
	add(NewDuplicatesStep("comment_text_clean"))

	add(NewHeadingStep("section:C", 2, SectionProbabilistic))
	add(numeric("prior_zhi_dom", "prior_jihu_dom", "prior_other_dom")...)
	add(categorical("prior_label_dom", "prior_basis_dom")...)
	add(NewRowSumStep("prior_sum", "先验概率求和校验", "prior_zhi_dom", "prior_jihu_dom", "prior_other_dom"))

	add(NewHeadingStep("section:D", 2, SectionMissingness))
	add(NewMissingnessStep(opts.MissingTopN))

	return steps
}

// NewReportPipeline creates a pipeline preloaded with Steps(opts).
func NewReportPipeline(opts Options, pipelineOpts ...Option) *Pipeline {
	p := New(pipelineOpts...)
	p.AddSteps(Steps(opts)...)
	return p
}
