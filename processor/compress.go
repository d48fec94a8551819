package processor

import (
	"fmt"

	"github.com/golang/snappy"
)

// CompressFrame сжимает исходящий кадр алгоритмом Snappy
func CompressFrame(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// DecompressFrame распаковывает кадр, сжатый CompressFrame
func DecompressFrame(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки кадра: %w", err)
	}
	return decompressed, nil
}
