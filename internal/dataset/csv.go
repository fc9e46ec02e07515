package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// DateLayout - формат колонки Data
const DateLayout = "2006-01-02"

// Columns - заголовок файла. Отчёт сопоставляет колонки по имени.
var Columns = []string{
	"Data",
	"Transportadora",
	"Tipo de Risco",
	"Nível de Criticidade",
	"Modal Afetado",
	"Região",
	"Custo Associado (R$)",
	"Rota/Local Crítico",
}

// ErrInvalidDataset - файл не соответствует контракту колонок или словарей
var ErrInvalidDataset = errors.New("invalid dataset")

// csvWriter обёртка для отслеживания ошибок
type csvWriter struct {
	w   *csv.Writer
	err error
}

func (cw *csvWriter) Write(record []string) {
	if cw.err != nil {
		return
	}
	cw.err = cw.w.Write(record)
}

func (cw *csvWriter) Flush() error {
	if cw.err != nil {
		return cw.err
	}
	cw.w.Flush()
	return cw.w.Error()
}

// Record преобразует инцидент в строку файла
func Record(inc models.Incident) []string {
	return []string{
		inc.Date.Format(DateLayout),
		string(inc.Carrier),
		string(inc.RiskType),
		string(inc.Criticality),
		string(inc.Modal),
		string(inc.Region),
		strconv.FormatInt(inc.Cost, 10),
		inc.CriticalRoute,
	}
}

// WriteCSV записывает инциденты с заголовком Columns
func WriteCSV(w io.Writer, incidents []models.Incident) error {
	cw := &csvWriter{w: csv.NewWriter(w)}
	cw.Write(Columns)
	for _, inc := range incidents {
		cw.Write(Record(inc))
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}
	return nil
}

// ReadCSV читает и проверяет файл набора данных
func ReadCSV(r io.Reader) ([]models.Incident, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrInvalidDataset, err)
	}
	for i, col := range Columns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrInvalidDataset, i, header[i], col)
		}
	}

	incidents := make([]models.Incident, 0)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDataset, line, err)
		}
		inc, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDataset, line, err)
		}
		incidents = append(incidents, inc)
	}
	return incidents, nil
}

func parseRecord(record []string) (models.Incident, error) {
	date, err := time.Parse(DateLayout, record[0])
	if err != nil {
		return models.Incident{}, fmt.Errorf("bad date %q", record[0])
	}
	cost, err := strconv.ParseInt(record[6], 10, 64)
	if err != nil || cost < 0 {
		return models.Incident{}, fmt.Errorf("bad cost %q", record[6])
	}

	switch {
	case !models.IsValidCarrier(record[1]):
		return models.Incident{}, fmt.Errorf("unknown carrier %q", record[1])
	case !models.IsValidRiskType(record[2]):
		return models.Incident{}, fmt.Errorf("unknown risk type %q", record[2])
	case !models.IsValidCriticality(record[3]):
		return models.Incident{}, fmt.Errorf("unknown criticality %q", record[3])
	case !models.IsValidModal(record[4]):
		return models.Incident{}, fmt.Errorf("unknown modal %q", record[4])
	case !models.IsValidRegion(record[5]):
		return models.Incident{}, fmt.Errorf("unknown region %q", record[5])
	}

	return models.Incident{
		Date:          date,
		Carrier:       models.Carrier(record[1]),
		RiskType:      models.RiskType(record[2]),
		Criticality:   models.Criticality(record[3]),
		Modal:         models.Modal(record[4]),
		Region:        models.Region(record[5]),
		Cost:          cost,
		CriticalRoute: record[7],
	}, nil
}
