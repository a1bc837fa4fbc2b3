package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tailor/internal/config"
	"tailor/internal/domain"
	"tailor/internal/generator"
	"tailor/internal/lint"
	"tailor/internal/port"
	"tailor/internal/tailoring"
)

// reportPlaceholder is rendered when the completion carried no match report.
const reportPlaceholder = "—"

// TailorRequest is the DTO for one tailoring run. Resume content may arrive as
// an uploaded document, pasted text, or per-section fields; the first usable
// source in that order wins.
type TailorRequest struct {
	FileBytes      []byte
	Filename       string
	ContentType    string
	ResumeText     string
	SectionFields  map[domain.SectionName]string
	JobDescription string
}

// TailorService defines the tailoring pipeline contract.
type TailorService interface {
	Tailor(ctx context.Context, req TailorRequest) (*domain.TailoredResume, error)
}

type tailorService struct {
	generator port.TextGenerator
	extractor port.TextExtractor
	linter    *lint.Registry
	genCfg    *config.GeneratorConfig
}

// NewTailorService creates a new TailorService implementation.
func NewTailorService(
	gen port.TextGenerator,
	extractor port.TextExtractor,
	linter *lint.Registry,
	genCfg *config.GeneratorConfig,
) TailorService {
	return &tailorService{
		generator: gen,
		extractor: extractor,
		linter:    linter,
		genCfg:    genCfg,
	}
}

// Tailor runs the full pipeline: resolve input, build the prompt, invoke the
// provider, parse the tagged blocks, split sections, and lint. All input
// validation happens before any network call; a failed run leaves nothing
// behind and the caller simply retries.
func (s *tailorService) Tailor(ctx context.Context, req TailorRequest) (*domain.TailoredResume, error) {
	input, err := s.resolveInput(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.genCfg.Primary.APIKey == "" {
		return nil, domain.ErrCredentialMissing
	}

	out, err := s.generator.Generate(ctx, generator.BuildTailorInput(input.ResumeText, input.JobDescription))
	if err != nil {
		var rlErr *generator.RateLimitError
		if errors.As(err, &rlErr) || errors.Is(err, domain.ErrEmptyCompletion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	blocks := tailoring.ExtractBlocks(out.Text)

	report := blocks.Report
	if report == "" {
		report = reportPlaceholder
	}

	result := &domain.TailoredResume{
		Resume:   blocks.Resume,
		Report:   report,
		Sections: tailoring.SplitSections(blocks.Resume),
		Warnings: s.linter.Run(blocks.Resume),
		Model:    out.Model,
	}

	log.Printf("tailorService.Tailor: completed, model=%s, sections=%d, warnings=%d",
		result.Model, len(result.Sections), len(result.Warnings))
	return result, nil
}

// resolveInput picks the resume source and validates that both resume content
// and a job description are present.
func (s *tailorService) resolveInput(ctx context.Context, req TailorRequest) (*domain.TailorInput, error) {
	resumeText := ""

	if len(req.FileBytes) > 0 {
		text, err := s.extractor.Extract(ctx, port.ExtractInput{
			FileBytes:   req.FileBytes,
			ContentType: req.ContentType,
			Filename:    req.Filename,
		})
		if err != nil {
			// A broken upload only halts the file source; pasted text may
			// still carry the request.
			if strings.TrimSpace(req.ResumeText) == "" && len(req.SectionFields) == 0 {
				return nil, err
			}
			log.Printf("tailorService.resolveInput: extraction failed, using pasted text: %v", err)
		} else {
			resumeText = strings.TrimSpace(text)
		}
	}

	if resumeText == "" {
		resumeText = strings.TrimSpace(req.ResumeText)
	}
	if resumeText == "" && len(req.SectionFields) > 0 {
		resumeText = AssembleSections(req.SectionFields)
	}

	if resumeText == "" {
		return nil, domain.ErrMissingResume
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, domain.ErrMissingJobDescription
	}

	return &domain.TailorInput{
		ResumeText:     resumeText,
		JobDescription: strings.TrimSpace(req.JobDescription),
	}, nil
}

// AssembleSections joins per-section form fields into one resume string,
// "{HEADING}\n{content}" per non-empty section, in canonical order.
func AssembleSections(fields map[domain.SectionName]string) string {
	var parts []string
	for _, name := range domain.CanonicalSections {
		content := strings.TrimSpace(fields[name])
		if content == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s\n%s", name, content))
	}
	return strings.Join(parts, "\n\n")
}
