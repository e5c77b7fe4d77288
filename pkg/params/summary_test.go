package params_test

import (
	"encoding/json"
	"testing"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/params"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Summary_001(t *testing.T) {
	assert := assert.New(t)
	req, err := params.Summary(schema.SummaryConfig{
		Type:          schema.LemurCustom,
		APIKey:        "key",
		TranscriptID:  "tid",
		Prompt:        "summarise",
		Temperature:   0.5,
		MaxOutputSize: 4000,
		AnswerFormat:  "bullet points",
		Context: schema.SummaryContext{
			Happening:  "meeting",
			Location:   "office",
			Additional: "quarterly",
		},
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	if assert.NotNil(req.Context) {
		assert.Equal("happing:meeting location:office additional:quarterly", *req.Context)
	}
	if assert.NotNil(req.AnswerFormat) {
		assert.Equal("bullet points", *req.AnswerFormat)
	}
	assert.Equal([]string{"tid"}, req.TranscriptIDs)
	assert.Equal(params.DefaultLemurModel, req.FinalModel)
	assert.Equal("summary", req.Endpoint())
}

func Test_Summary_002(t *testing.T) {
	assert := assert.New(t)
	req, err := params.Summary(schema.SummaryConfig{
		Type:          schema.LemurBasic,
		APIKey:        "key",
		TranscriptID:  "tid",
		FinalModel:    "anthropic/claude-3-haiku",
		Prompt:        "what happened?",
		MaxOutputSize: 100,
		AnswerFormat:  "ignored",
		Context:       schema.SummaryContext{Happening: "ignored"},
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Nil(req.Context)
	assert.Nil(req.AnswerFormat)
	assert.Equal("task", req.Endpoint())

	// Basic requests serialize exactly these keys
	var keys map[string]any
	data, err := json.Marshal(req)
	if assert.NoError(err) && assert.NoError(json.Unmarshal(data, &keys)) {
		assert.Len(keys, 5)
		for _, key := range []string{"transcript_ids", "prompt", "final_model", "max_output_size", "temperature"} {
			assert.Contains(keys, key)
		}
	}
}

func Test_Summary_003(t *testing.T) {
	assert := assert.New(t)
	valid := schema.SummaryConfig{
		Type:          schema.LemurBasic,
		APIKey:        "key",
		TranscriptID:  "tid",
		Prompt:        "p",
		MaxOutputSize: 10,
	}
	assert.NoError(params.ValidateSummary(valid))

	tests := map[string]func(*schema.SummaryConfig){
		"type":        func(c *schema.SummaryConfig) { c.Type = "other" },
		"apikey":      func(c *schema.SummaryConfig) { c.APIKey = "" },
		"transcript":  func(c *schema.SummaryConfig) { c.TranscriptID = "" },
		"prompt":      func(c *schema.SummaryConfig) { c.Prompt = "" },
		"temperature": func(c *schema.SummaryConfig) { c.Temperature = 1.5 },
		"size":        func(c *schema.SummaryConfig) { c.MaxOutputSize = 4001 },
		"zero":        func(c *schema.SummaryConfig) { c.MaxOutputSize = 0 },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			fn(&cfg)
			_, err := params.Summary(cfg)
			assert.ErrorIs(err, schema.ErrInvalidSummaryConfig)
			assert.True(schema.IsClientError(err))
		})
	}

	// A custom summary does not need a prompt
	custom := valid
	custom.Type = schema.LemurCustom
	custom.Prompt = ""
	assert.NoError(params.ValidateSummary(custom))
}
