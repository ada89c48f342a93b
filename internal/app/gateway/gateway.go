// Package gateway defines the contracts for the external AI service calls
// and the fixed instruction prompts sent with them.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpstream indicates the external AI call itself failed (network,
	// auth, quota). Never retried.
	ErrUpstream = errors.New("upstream communication error")

	// ErrEmptyResult indicates the external service answered without any
	// usable content.
	ErrEmptyResult = errors.New("empty result from upstream")
)

// Transcriber converts raw audio bytes into diarized, timestamped text.
type Transcriber interface {
	// Transcribe sends the audio payload together with the fixed
	// transcription prompt and returns non-empty trimmed text on success.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Chatter answers a question about one or more transcripts.
type Chatter interface {
	// Answer returns the model's markdown response for the given transcripts
	// and question. Rendering to HTML is the caller's concern.
	Answer(ctx context.Context, transcripts []string, question string) (string, error)
}

// TranscribePrompt is the fixed, versioned instruction for audio analysis:
// traditional-Chinese, speaker-diarized, timestamped output in the line
// format `[MM:SS] [說話者 N]: <對話內容>`.
const TranscribePrompt = `你是一位專業的逐字稿分析師。你的任務是處理一段可能包含多位說話者的音訊。
請你遵循以下指示：
1.  將音訊內容完整轉換為**繁體中文**逐字稿。
2.  你的核心目標是根據聲音特徵，準確識別出音訊中所有不同的說話者。
3.  為每位說話者依序分配一個編號，格式為「[說話者 1]」、「[說話者 2]」等。
4.  每一段對話都必須以時間戳記和說話者標籤開頭，並在新的一行顯示。格式必須為 ` + "`[MM:SS] [說話者 1]: <對話內容>`" + `。
5.  即使音訊中只有一位說話者，也請使用「[說話者 1]」來標示。
最終輸出的逐字稿必須清晰、準確，且易於閱讀。`

// chatPromptTemplate constrains the assistant to answer only from the
// supplied transcripts, in traditional Chinese, formatted as markdown.
const chatPromptTemplate = `You are 'Audio Analyzer', a helpful AI assistant. You are having a conversation with a user about one or more meeting transcripts they have provided.

Your primary goal is to answer the user's questions based *only* on the provided transcript(s).
- If multiple transcripts are provided, you can compare them or synthesize information from them if the user asks.
- Be conversational and direct.
- If the user asks for a summary, provide a bulleted list of key points for each transcript, clearly labeling which summary belongs to which transcript.
- If the information to answer the question is not in the transcript(s), clearly state that.
- Format your response using Markdown.
- Respond in **繁體中文**.

**Provided Transcript(s) Context:**
---
%s
---

**User's Question:**
"%s"
`

// transcriptSeparator visibly delimits transcripts inside the chat context.
const transcriptSeparator = "\n\n---\n\n"

// BuildChatPrompt joins the transcripts into a single context block and
// embeds it and the question into the conversational instruction template.
func BuildChatPrompt(transcripts []string, question string) string {
	return fmt.Sprintf(chatPromptTemplate, strings.Join(transcripts, transcriptSeparator), question)
}
