package handler

// Typed handoff payloads. The scheduler stores and forwards these verbatim;
// only handlers marshal and unmarshal them. The dispatch key is the stage
// name that produced the payload.

// ResearchOutput is what RESEARCH hands to SCRIPT.
type ResearchOutput struct {
	Topic             string   `json:"topic"`
	Facts             []string `json:"facts"`
	Sources           []string `json:"sources"`
	Hooks             []string `json:"hooks"`
	TargetAudience    string   `json:"target_audience"`
	EstimatedDuration int      `json:"estimated_duration"`
}

// ScriptSection is one body segment of a script.
type ScriptSection struct {
	Heading   string  `json:"heading"`
	Content   string  `json:"content"`
	VisualCue string  `json:"visual_cue"`
	DurationS float64 `json:"duration_s"`
}

// ScriptOutput is what SCRIPT hands to VOICE.
type ScriptOutput struct {
	Hook              string          `json:"hook"`
	Body              []ScriptSection `json:"body"`
	CTA               string          `json:"cta"`
	FullScript        string          `json:"full_script"`
	EstimatedDuration int             `json:"estimated_duration"`
	SpeakerNotes      []string        `json:"speaker_notes"`
}

// VoiceTimestamp marks where a script segment lands in the narration.
type VoiceTimestamp struct {
	Segment string  `json:"segment"`
	StartS  float64 `json:"start_s"`
	EndS    float64 `json:"end_s"`
}

// VoiceOutput is what VOICE hands to EDITOR.
type VoiceOutput struct {
	AudioURL   string           `json:"audio_url"`
	DurationS  float64          `json:"duration_s"`
	Transcript string           `json:"transcript"`
	Timestamps []VoiceTimestamp `json:"timestamps"`
}

// MusicOutput is what MUSIC hands to EDITOR.
type MusicOutput struct {
	AudioURL  string  `json:"audio_url"`
	DurationS float64 `json:"duration_s"`
	Genre     string  `json:"genre"`
	Mood      string  `json:"mood"`
}

// VisualClip is one video segment produced by VISUAL.
type VisualClip struct {
	URL       string  `json:"url"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
}

// VisualOverlay is a text or graphic overlay on the timeline.
type VisualOverlay struct {
	Content   string  `json:"content"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"`
	Style     string  `json:"style"`
}

// VisualOutput is what VISUAL hands to EDITOR.
type VisualOutput struct {
	Clips    []VisualClip    `json:"clips"`
	Overlays []VisualOverlay `json:"overlays"`
}

// VideoFormat describes the rendered container.
type VideoFormat struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	FPS    int    `json:"fps"`
	Codec  string `json:"codec"`
}

// EditorOutput is what EDITOR hands to PUBLISH.
type EditorOutput struct {
	VideoURL     string      `json:"video_url"`
	ThumbnailURL string      `json:"thumbnail_url"`
	DurationS    float64     `json:"duration_s"`
	Format       VideoFormat `json:"format"`
	RenderTimeS  float64     `json:"render_time_s"`
}

// PlatformResult is one platform's publish outcome.
type PlatformResult struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	PostID   string `json:"post_id"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// PublishOutput is the terminal stage's record of where the video went.
type PublishOutput struct {
	Platforms   []PlatformResult `json:"platforms"`
	PublishedAt string           `json:"published_at"`
}
