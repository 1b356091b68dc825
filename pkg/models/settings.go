package models

// MissionSettings are the per-mission tunables recognized by the core.
// Zero values mean "unset"; ApplyDefaults fills them from the configured
// defaults before the mission starts.
type MissionSettings struct {
	InitialResearchMaxDepth     int  `json:"initial_research_max_depth" yaml:"initial_research_max_depth"`
	InitialResearchMaxQuestions int  `json:"initial_research_max_questions" yaml:"initial_research_max_questions"`
	StructuredResearchRounds    int  `json:"structured_research_rounds" yaml:"structured_research_rounds"`
	WritingPasses               int  `json:"writing_passes" yaml:"writing_passes"`
	ThoughtPadContextLimit      int  `json:"thought_pad_context_limit" yaml:"thought_pad_context_limit"`
	InitialExplorationDocResults int `json:"initial_exploration_doc_results" yaml:"initial_exploration_doc_results"`
	InitialExplorationWebResults int `json:"initial_exploration_web_results" yaml:"initial_exploration_web_results"`
	MainResearchDocResults      int  `json:"main_research_doc_results" yaml:"main_research_doc_results"`
	MainResearchWebResults      int  `json:"main_research_web_results" yaml:"main_research_web_results"`
	MaxNotesForAssignmentReranking int `json:"max_notes_for_assignment_reranking" yaml:"max_notes_for_assignment_reranking"`
	MaxConcurrentRequests       int  `json:"max_concurrent_requests" yaml:"max_concurrent_requests"`
	SkipFinalReplanning         bool `json:"skip_final_replanning" yaml:"skip_final_replanning"`
	AutoOptimizeParams          bool `json:"auto_optimize_params" yaml:"auto_optimize_params"`

	// explicit tracks which keys the user set, so auto-optimization only
	// touches defaulted values. Populated by the API layer.
	Explicit map[string]bool `json:"-" yaml:"-"`
}

// DefaultMissionSettings returns the built-in defaults.
func DefaultMissionSettings() MissionSettings {
	return MissionSettings{
		InitialResearchMaxDepth:        2,
		InitialResearchMaxQuestions:    10,
		StructuredResearchRounds:       2,
		WritingPasses:                  2,
		ThoughtPadContextLimit:         10,
		InitialExplorationDocResults:   5,
		InitialExplorationWebResults:   3,
		MainResearchDocResults:         5,
		MainResearchWebResults:         5,
		MaxNotesForAssignmentReranking: 80,
		MaxConcurrentRequests:          10,
	}
}

// ApplyDefaults fills unset (zero) numeric fields from defaults.
func (s *MissionSettings) ApplyDefaults(defaults MissionSettings) {
	if s.InitialResearchMaxDepth == 0 {
		s.InitialResearchMaxDepth = defaults.InitialResearchMaxDepth
	}
	if s.InitialResearchMaxQuestions == 0 {
		s.InitialResearchMaxQuestions = defaults.InitialResearchMaxQuestions
	}
	if s.StructuredResearchRounds == 0 && !s.Explicit["structured_research_rounds"] {
		s.StructuredResearchRounds = defaults.StructuredResearchRounds
	}
	if s.WritingPasses == 0 && !s.Explicit["writing_passes"] {
		s.WritingPasses = defaults.WritingPasses
	}
	if s.ThoughtPadContextLimit == 0 {
		s.ThoughtPadContextLimit = defaults.ThoughtPadContextLimit
	}
	if s.InitialExplorationDocResults == 0 {
		s.InitialExplorationDocResults = defaults.InitialExplorationDocResults
	}
	if s.InitialExplorationWebResults == 0 {
		s.InitialExplorationWebResults = defaults.InitialExplorationWebResults
	}
	if s.MainResearchDocResults == 0 {
		s.MainResearchDocResults = defaults.MainResearchDocResults
	}
	if s.MainResearchWebResults == 0 {
		s.MainResearchWebResults = defaults.MainResearchWebResults
	}
	if s.MaxNotesForAssignmentReranking == 0 {
		s.MaxNotesForAssignmentReranking = defaults.MaxNotesForAssignmentReranking
	}
	if s.MaxConcurrentRequests == 0 {
		s.MaxConcurrentRequests = defaults.MaxConcurrentRequests
	}
}
