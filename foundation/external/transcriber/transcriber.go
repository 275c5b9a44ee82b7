// Package transcriber is the websocket client for the external
// speech-to-text engine. The engine is a black box: audio frames go in,
// transcript text comes out.
package transcriber

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

type Transcriber struct {
	conn *websocket.Conn
}

// New dials the transcription endpoint and registers model and language.
func New(endpoint string, apiKey string, model string, languageCode string) (*Transcriber, error) {
	header := http.Header{"api-key": []string{apiKey}}

	conn, _, err := websocket.DefaultDialer.Dial(endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("transcriber: dial %s: %w", endpoint, err)
	}

	register := RegisterData{
		Model:        model,
		LanguageCode: languageCode,
	}
	if err := conn.WriteJSON(register); err != nil {
		conn.Close()
		return nil, fmt.Errorf("transcriber: register: %w", err)
	}

	return &Transcriber{conn: conn}, nil
}

// Send streams one chunk of 16-bit PCM audio to the engine.
func (t *Transcriber) Send(audio []byte) error {
	if err := t.conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
		return fmt.Errorf("transcriber: send audio: %w", err)
	}
	return nil
}

// Flush tells the engine no more audio is coming for this session.
func (t *Transcriber) Flush() error {
	if err := t.conn.WriteJSON(FlushData{Flush: true}); err != nil {
		return fmt.Errorf("transcriber: flush: %w", err)
	}
	return nil
}

// ReadResult blocks for the next transcription result.
func (t *Transcriber) ReadResult() (Result, error) {
	var result Result
	if err := t.conn.ReadJSON(&result); err != nil {
		return Result{}, fmt.Errorf("transcriber: read result: %w", err)
	}
	return result, nil
}

func (t *Transcriber) Close() error {
	return t.conn.Close()
}
