package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"

	"github.com/maestro-research/maestro/pkg/models"
)

var noteRefPattern = regexp.MustCompile(`\[(note_[A-Za-z0-9_-]+)\]`)

// Citation is one resolved reference-list entry.
type Citation struct {
	Token     string `json:"token"`
	Reference string `json:"reference"`
}

// CitationResult is the processed report plus its reference list, ordered by
// first appearance.
type CitationResult struct {
	Content      string     `json:"content"`
	References   []Citation `json:"references"`
	DroppedNotes []string   `json:"dropped_notes,omitempty"` // unresolvable internal citations
}

// CitationAgent rewrites note-id brackets into stable citation tokens.
type CitationAgent struct {
	recorder Recorder
}

// NewCitationAgent builds the citation agent. recorder may be nil.
func NewCitationAgent(recorder Recorder) *CitationAgent {
	return &CitationAgent{recorder: recorder}
}

// Process rewrites the report and logs a warning when internal notes could
// not be resolved to an original source.
func (c *CitationAgent) Process(ctx context.Context, missionID, content string, notes []models.Note) *CitationResult {
	result := ProcessCitations(content, notes)

	status := models.RecordSuccess
	errMsg := ""
	if len(result.DroppedNotes) > 0 {
		status = models.RecordWarning
		errMsg = fmt.Sprintf("dropped unresolvable citations: %s", strings.Join(result.DroppedNotes, ", "))
	}
	record(ctx, c.recorder, missionID, models.ExecutionRecord{
		AgentName:     AgentCitation,
		Action:        "Process citations",
		InputSummary:  fmt.Sprintf("%d characters, %d notes", len(content), len(notes)),
		OutputSummary: fmt.Sprintf("%d references", len(result.References)),
		Status:        status,
		ErrorMessage:  errMsg,
	})
	return result
}

// ProcessCitations walks the markdown, replaces every [note_…] bracket with
// the stable token of its source, and builds the reference list ordered by
// first appearance. Internal notes resolve through their
// synthesized_from_notes metadata; an unresolvable citation is dropped.
func ProcessCitations(content string, notes []models.Note) *CitationResult {
	byID := make(map[string]*models.Note, len(notes))
	for i := range notes {
		byID[notes[i].NoteID] = &notes[i]
	}

	result := &CitationResult{}
	ordered := []string{}                  // tokens by first appearance
	references := make(map[string]string)  // token → reference line
	dropped := make(map[string]bool)

	result.Content = noteRefPattern.ReplaceAllStringFunc(content, func(match string) string {
		noteID := noteRefPattern.FindStringSubmatch(match)[1]
		note, ok := byID[noteID]
		if !ok {
			dropped[noteID] = true
			return ""
		}

		citations := resolveNote(note, byID, map[string]bool{})
		if len(citations) == 0 {
			dropped[noteID] = true
			return ""
		}

		var tokens []string
		seen := make(map[string]bool)
		for _, c := range citations {
			if seen[c.Token] {
				continue
			}
			seen[c.Token] = true
			tokens = append(tokens, c.Token)
			if _, known := references[c.Token]; !known {
				references[c.Token] = c.Reference
				ordered = append(ordered, c.Token)
			}
		}
		// Multi-source claims collapse into one comma-separated bracket.
		return "[" + strings.Join(tokens, ", ") + "]"
	})

	for _, token := range ordered {
		result.References = append(result.References, Citation{Token: token, Reference: references[token]})
	}
	for id := range dropped {
		result.DroppedNotes = append(result.DroppedNotes, id)
	}
	sort.Strings(result.DroppedNotes)
	return result
}

// resolveNote maps a note to its citation(s). Internal notes recurse into
// the notes they were synthesized from; visited guards against cycles.
func resolveNote(note *models.Note, byID map[string]*models.Note, visited map[string]bool) []Citation {
	if visited[note.NoteID] {
		return nil
	}
	visited[note.NoteID] = true

	switch note.SourceType {
	case models.SourceDocument:
		docID := metaString(note.SourceMetadata, "doc_id")
		if docID == "" {
			docID = note.SourceID
		}
		return []Citation{{
			Token:     "doc-" + shortHash(docID),
			Reference: documentReference(note, docID),
		}}
	case models.SourceWeb:
		return []Citation{{
			Token:     "web-" + shortHash(note.SourceID),
			Reference: webReference(note),
		}}
	case models.SourceInternal:
		var citations []Citation
		for _, srcID := range metaStringSlice(note.SourceMetadata, "synthesized_from_notes") {
			if src, ok := byID[srcID]; ok {
				citations = append(citations, resolveNote(src, byID, visited)...)
			}
		}
		return citations
	}
	return nil
}

func documentReference(note *models.Note, docID string) string {
	title := metaString(note.SourceMetadata, "title")
	if title == "" {
		title = "Document " + docID
	}
	parts := []string{title}
	if authors := metaString(note.SourceMetadata, "authors"); authors != "" {
		parts = append(parts, authors)
	}
	if year := metaString(note.SourceMetadata, "year"); year != "" {
		parts = append(parts, year)
	}
	if journal := metaString(note.SourceMetadata, "journal"); journal != "" {
		parts = append(parts, journal)
	}
	return strings.Join(parts, ". ")
}

func webReference(note *models.Note) string {
	title := metaString(note.SourceMetadata, "title")
	if title == "" {
		return note.SourceID
	}
	return title + ". " + note.SourceID
}

// shortHash is a stable 8-hex-digit digest used in citation tokens.
func shortHash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaStringSlice(meta map[string]any, key string) []string {
	var out []string
	switch v := meta[key].(type) {
	case []string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
