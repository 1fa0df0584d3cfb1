package queue

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"
)

// Export выгружает участников очереди в CSV.
// Имя файла детерминировано по идентификатору очереди, содержимое — по
// состоянию очереди: повторная выгрузка без новых вступлений и смен статуса
// совпадает байт в байт.
func (s *Service) Export(ctx context.Context, queueID string) (string, []byte, error) {
	q, members, err := s.List(ctx, queueID)
	if err != nil {
		return "", nil, err
	}
	filename := fmt.Sprintf("queuely-queue-report-%s.csv", q.ID)
	return filename, renderCSV(members), nil
}

func renderCSV(members []MemberView) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"name", "status", "joined_at"})
	for _, m := range members {
		_ = w.Write([]string{m.Name, m.Status, m.JoinedAt.UTC().Format(time.RFC3339)})
	}
	w.Flush()
	return buf.Bytes()
}
