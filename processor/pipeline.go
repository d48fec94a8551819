package processor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Encoding способ передачи исходящих сообщений по WebSocket
type Encoding string

const (
	// EncodingJSON текстовые кадры с JSON
	EncodingJSON Encoding = "json"
	// EncodingSnappy бинарные кадры с JSON, сжатым Snappy
	EncodingSnappy Encoding = "snappy"
)

// ParseEncoding разбирает параметр ?encoding=; пустое значение означает JSON
func ParseEncoding(value string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(value))) {
	case "", EncodingJSON:
		return EncodingJSON, nil
	case EncodingSnappy:
		return EncodingSnappy, nil
	default:
		return "", fmt.Errorf("неизвестная кодировка %q", value)
	}
}

// Frame готовый к отправке кадр
type Frame struct {
	Data   []byte
	Binary bool
}

// EncodeOutbound объединяет этапы подготовки исходящего сообщения:
// сериализацию в JSON и, для EncodingSnappy, сжатие.
func EncodeOutbound(payload interface{}, encoding Encoding) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, fmt.Errorf("ошибка сериализации сообщения: %w", err)
	}
	if encoding == EncodingSnappy {
		return Frame{Data: CompressFrame(data), Binary: true}, nil
	}
	return Frame{Data: data}, nil
}

// DecodeInbound выполняет обратный процесс для кадра, полученного от клиента
func DecodeInbound(data []byte, binary bool, target interface{}) error {
	if binary {
		decompressed, err := DecompressFrame(data)
		if err != nil {
			return err
		}
		data = decompressed
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("ошибка декодирования сообщения: %w", err)
	}
	return nil
}
