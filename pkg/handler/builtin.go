package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crewcast/crewcast/pkg/registry"
)

// SimulatedHandler is a built-in handler that synthesizes a plausible typed
// output without calling external services. It is the default wiring for
// local development and dry runs; production deployments register real
// handlers instead.
type SimulatedHandler struct {
	stage      registry.StageName
	synthesize func(ec ExecutionContext) (any, []string)
}

// Name implements Handler.
func (h *SimulatedHandler) Name() registry.StageName { return h.stage }

// Validate only requires that non-first stages received a handoff payload.
func (h *SimulatedHandler) Validate(input json.RawMessage) ValidationResult {
	if h.stage != registry.First() && len(input) == 0 {
		return Invalid(fmt.Sprintf("stage %s requires the previous stage's output", h.stage))
	}
	return Valid()
}

// Execute synthesizes the stage's output.
func (h *SimulatedHandler) Execute(ctx context.Context, ec ExecutionContext) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, artifacts := h.synthesize(ec)
	raw, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s output: %w", h.stage, err)
	}

	meta, _ := json.Marshal(map[string]any{"simulated": true, "dry_run": ec.DryRun})
	return &Result{
		Success:   true,
		Output:    raw,
		Artifacts: artifacts,
		Metadata:  meta,
	}, nil
}

// RegisterSimulated registers simulated handlers for every stage.
func RegisterSimulated(reg *Registry) error {
	handlers := []*SimulatedHandler{
		{stage: registry.StageResearch, synthesize: simulateResearch},
		{stage: registry.StageScript, synthesize: simulateScript},
		{stage: registry.StageVoice, synthesize: simulateVoice},
		{stage: registry.StageMusic, synthesize: simulateMusic},
		{stage: registry.StageVisual, synthesize: simulateVisual},
		{stage: registry.StageEditor, synthesize: simulateEditor},
		{stage: registry.StagePublish, synthesize: simulatePublish},
	}
	for _, h := range handlers {
		if err := reg.Register(h); err != nil {
			return err
		}
	}
	return nil
}

func simulateResearch(ec ExecutionContext) (any, []string) {
	var brief struct {
		Topic string `json:"topic"`
	}
	_ = json.Unmarshal(ec.Input, &brief)
	if brief.Topic == "" {
		brief.Topic = "untitled"
	}
	return ResearchOutput{
		Topic:             brief.Topic,
		Facts:             []string{"fact one", "fact two", "fact three"},
		Sources:           []string{"https://example.com/source"},
		Hooks:             []string{"you won't believe this", "here's why it matters"},
		TargetAudience:    "general",
		EstimatedDuration: 60,
	}, nil
}

func simulateScript(ExecutionContext) (any, []string) {
	return ScriptOutput{
		Hook: "you won't believe this",
		Body: []ScriptSection{
			{Heading: "Intro", Content: "opening lines", VisualCue: "title card", DurationS: 10},
			{Heading: "Main", Content: "the substance", VisualCue: "b-roll", DurationS: 40},
		},
		CTA:               "subscribe for more",
		FullScript:        "opening lines... the substance... subscribe for more",
		EstimatedDuration: 60,
		SpeakerNotes:      []string{"keep the pace up"},
	}, nil
}

func simulateVoice(ec ExecutionContext) (any, []string) {
	url := fmt.Sprintf("file:///artifacts/%s/voice.mp3", ec.PipelineID)
	return VoiceOutput{
		AudioURL:   url,
		DurationS:  58.5,
		Transcript: "opening lines... the substance... subscribe for more",
		Timestamps: []VoiceTimestamp{{Segment: "Intro", StartS: 0, EndS: 10}},
	}, []string{url}
}

func simulateMusic(ec ExecutionContext) (any, []string) {
	url := fmt.Sprintf("file:///artifacts/%s/music.mp3", ec.PipelineID)
	return MusicOutput{AudioURL: url, DurationS: 60, Genre: "lo-fi", Mood: "upbeat"}, []string{url}
}

func simulateVisual(ec ExecutionContext) (any, []string) {
	url := fmt.Sprintf("file:///artifacts/%s/clip-1.mp4", ec.PipelineID)
	return VisualOutput{
		Clips:    []VisualClip{{URL: url, StartTime: 0, Duration: 60}},
		Overlays: []VisualOverlay{{Content: "subscribe", StartTime: 55, Duration: 5, Style: "banner"}},
	}, []string{url}
}

func simulateEditor(ec ExecutionContext) (any, []string) {
	video := fmt.Sprintf("file:///artifacts/%s/final.mp4", ec.PipelineID)
	thumb := fmt.Sprintf("file:///artifacts/%s/thumb.jpg", ec.PipelineID)
	return EditorOutput{
		VideoURL:     video,
		ThumbnailURL: thumb,
		DurationS:    60,
		Format:       VideoFormat{Width: 1080, Height: 1920, FPS: 30, Codec: "h264"},
		RenderTimeS:  12.4,
	}, []string{video, thumb}
}

func simulatePublish(ec ExecutionContext) (any, []string) {
	return PublishOutput{
		Platforms: []PlatformResult{{
			Platform: "youtube",
			URL:      "https://youtube.example/watch?v=" + ec.PipelineID,
			PostID:   ec.PipelineID,
			Success:  true,
		}},
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
