package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChatPrompt(t *testing.T) {
	t.Run("single transcript", func(t *testing.T) {
		prompt := BuildChatPrompt([]string{"[00:01] [說話者 1]: 開會了"}, "誰先發言?")

		assert.Contains(t, prompt, "[00:01] [說話者 1]: 開會了")
		assert.Contains(t, prompt, `"誰先發言?"`)
		assert.NotContains(t, prompt, transcriptSeparator)
	})

	t.Run("multiple transcripts are visibly separated", func(t *testing.T) {
		prompt := BuildChatPrompt([]string{"first meeting", "second meeting"}, "compare them")

		assert.Contains(t, prompt, "first meeting"+transcriptSeparator+"second meeting")
		assert.Equal(t, 1, strings.Count(prompt, transcriptSeparator))
	})

	t.Run("question lands after the context block", func(t *testing.T) {
		// Sentinels that cannot occur in the template text itself.
		prompt := BuildChatPrompt([]string{"CTX-SENTINEL-1377"}, "QUESTION-SENTINEL-9241")

		ctxIdx := strings.Index(prompt, "CTX-SENTINEL-1377")
		headingIdx := strings.Index(prompt, "**User's Question:**")
		questionIdx := strings.Index(prompt, "QUESTION-SENTINEL-9241")

		require.GreaterOrEqual(t, ctxIdx, 0)
		require.GreaterOrEqual(t, headingIdx, 0)
		require.GreaterOrEqual(t, questionIdx, 0)
		assert.Less(t, ctxIdx, headingIdx)
		assert.Less(t, headingIdx, questionIdx)
	})
}

func TestTranscribePrompt_Shape(t *testing.T) {
	// The instruction is versioned with the transcripts it produced; the
	// diarization line format is the part downstream consumers rely on.
	assert.Contains(t, TranscribePrompt, "[MM:SS] [說話者 1]: <對話內容>")
	assert.Contains(t, TranscribePrompt, "繁體中文")
}
