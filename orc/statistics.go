package orc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/pb/pb"
)

// ColumnStatistics is the typed view over one column's statistics message.
// Kind-specific accessors fail with StatsUndefined when the field is absent
// from the message.
type ColumnStatistics interface {
	GetNumberOfValues() uint64
	String() string
}

type columnStatistics struct {
	valueCount uint64
}

func (s columnStatistics) GetNumberOfValues() uint64 {
	return s.valueCount
}

func (s columnStatistics) String() string {
	return fmt.Sprintf("column has %d values", s.valueCount)
}

type IntegerColumnStatistics struct {
	columnStatistics
	hasMinimum bool
	hasMaximum bool
	hasSum     bool
	minimum    int64
	maximum    int64
	sum        int64
}

func (s *IntegerColumnStatistics) HasMinimum() bool { return s.hasMinimum }
func (s *IntegerColumnStatistics) HasMaximum() bool { return s.hasMaximum }
func (s *IntegerColumnStatistics) HasSum() bool     { return s.hasSum }

func (s *IntegerColumnStatistics) GetMinimum() (int64, error) {
	if !s.hasMinimum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *IntegerColumnStatistics) GetMaximum() (int64, error) {
	if !s.hasMaximum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *IntegerColumnStatistics) GetSum() (int64, error) {
	if !s.hasSum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "sum"})
	}
	return s.sum, nil
}

func (s *IntegerColumnStatistics) String() string {
	return fmt.Sprintf("integer column with %d values, min %v max %v sum %v",
		s.valueCount, s.minimum, s.maximum, s.sum)
}

type DoubleColumnStatistics struct {
	columnStatistics
	hasMinimum bool
	hasMaximum bool
	hasSum     bool
	minimum    float64
	maximum    float64
	sum        float64
}

func (s *DoubleColumnStatistics) HasMinimum() bool { return s.hasMinimum }
func (s *DoubleColumnStatistics) HasMaximum() bool { return s.hasMaximum }
func (s *DoubleColumnStatistics) HasSum() bool     { return s.hasSum }

func (s *DoubleColumnStatistics) GetMinimum() (float64, error) {
	if !s.hasMinimum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *DoubleColumnStatistics) GetMaximum() (float64, error) {
	if !s.hasMaximum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *DoubleColumnStatistics) GetSum() (float64, error) {
	if !s.hasSum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "sum"})
	}
	return s.sum, nil
}

func (s *DoubleColumnStatistics) String() string {
	return fmt.Sprintf("double column with %d values", s.valueCount)
}

type StringColumnStatistics struct {
	columnStatistics
	hasMinimum     bool
	hasMaximum     bool
	hasTotalLength bool
	minimum        string
	maximum        string
	totalLength    uint64
}

func (s *StringColumnStatistics) HasMinimum() bool     { return s.hasMinimum }
func (s *StringColumnStatistics) HasMaximum() bool     { return s.hasMaximum }
func (s *StringColumnStatistics) HasTotalLength() bool { return s.hasTotalLength }

func (s *StringColumnStatistics) GetMinimum() (string, error) {
	if !s.hasMinimum {
		return "", errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *StringColumnStatistics) GetMaximum() (string, error) {
	if !s.hasMaximum {
		return "", errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *StringColumnStatistics) GetTotalLength() (uint64, error) {
	if !s.hasTotalLength {
		return 0, errors.WithStack(common.StatsUndefined{Field: "total length"})
	}
	return s.totalLength, nil
}

func (s *StringColumnStatistics) String() string {
	return fmt.Sprintf("string column with %d values", s.valueCount)
}

type BooleanColumnStatistics struct {
	columnStatistics
	hasCount  bool
	trueCount uint64
}

func (s *BooleanColumnStatistics) HasCount() bool { return s.hasCount }

func (s *BooleanColumnStatistics) GetTrueCount() (uint64, error) {
	if !s.hasCount {
		return 0, errors.WithStack(common.StatsUndefined{Field: "true count"})
	}
	return s.trueCount, nil
}

func (s *BooleanColumnStatistics) GetFalseCount() (uint64, error) {
	if !s.hasCount {
		return 0, errors.WithStack(common.StatsUndefined{Field: "false count"})
	}
	return s.valueCount - s.trueCount, nil
}

func (s *BooleanColumnStatistics) String() string {
	return fmt.Sprintf("boolean column with %d values", s.valueCount)
}

type BinaryColumnStatistics struct {
	columnStatistics
	hasTotalLength bool
	totalLength    uint64
}

func (s *BinaryColumnStatistics) HasTotalLength() bool { return s.hasTotalLength }

func (s *BinaryColumnStatistics) GetTotalLength() (uint64, error) {
	if !s.hasTotalLength {
		return 0, errors.WithStack(common.StatsUndefined{Field: "total length"})
	}
	return s.totalLength, nil
}

func (s *BinaryColumnStatistics) String() string {
	return fmt.Sprintf("binary column with %d values", s.valueCount)
}

type DateColumnStatistics struct {
	columnStatistics
	hasMinimum bool
	hasMaximum bool
	minimum    int32
	maximum    int32
}

func (s *DateColumnStatistics) HasMinimum() bool { return s.hasMinimum }
func (s *DateColumnStatistics) HasMaximum() bool { return s.hasMaximum }

func (s *DateColumnStatistics) GetMinimum() (int32, error) {
	if !s.hasMinimum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *DateColumnStatistics) GetMaximum() (int32, error) {
	if !s.hasMaximum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *DateColumnStatistics) String() string {
	return fmt.Sprintf("date column with %d values", s.valueCount)
}

type TimestampColumnStatistics struct {
	columnStatistics
	hasMinimum bool
	hasMaximum bool
	minimum    int64
	maximum    int64
}

func (s *TimestampColumnStatistics) HasMinimum() bool { return s.hasMinimum }
func (s *TimestampColumnStatistics) HasMaximum() bool { return s.hasMaximum }

func (s *TimestampColumnStatistics) GetMinimum() (int64, error) {
	if !s.hasMinimum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *TimestampColumnStatistics) GetMaximum() (int64, error) {
	if !s.hasMaximum {
		return 0, errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *TimestampColumnStatistics) String() string {
	return fmt.Sprintf("timestamp column with %d values", s.valueCount)
}

type DecimalColumnStatistics struct {
	columnStatistics
	hasMinimum bool
	hasMaximum bool
	hasSum     bool
	minimum    string
	maximum    string
	sum        string
}

func (s *DecimalColumnStatistics) HasMinimum() bool { return s.hasMinimum }
func (s *DecimalColumnStatistics) HasMaximum() bool { return s.hasMaximum }
func (s *DecimalColumnStatistics) HasSum() bool     { return s.hasSum }

func (s *DecimalColumnStatistics) GetMinimum() (string, error) {
	if !s.hasMinimum {
		return "", errors.WithStack(common.StatsUndefined{Field: "minimum"})
	}
	return s.minimum, nil
}

func (s *DecimalColumnStatistics) GetMaximum() (string, error) {
	if !s.hasMaximum {
		return "", errors.WithStack(common.StatsUndefined{Field: "maximum"})
	}
	return s.maximum, nil
}

func (s *DecimalColumnStatistics) GetSum() (string, error) {
	if !s.hasSum {
		return "", errors.WithStack(common.StatsUndefined{Field: "sum"})
	}
	return s.sum, nil
}

func (s *DecimalColumnStatistics) String() string {
	return fmt.Sprintf("decimal column with %d values", s.valueCount)
}

// convertColumnStatistics wraps one stats message in the view that matches
// the column's type.
func convertColumnStatistics(td *api.TypeDescription, stats *pb.ColumnStatistics) ColumnStatistics {
	base := columnStatistics{valueCount: stats.GetNumberOfValues()}
	switch td.Kind {
	case pb.Type_BYTE, pb.Type_SHORT, pb.Type_INT, pb.Type_LONG:
		s := &IntegerColumnStatistics{columnStatistics: base}
		if is := stats.GetIntStatistics(); is != nil {
			s.hasMinimum = is.Minimum != nil
			s.hasMaximum = is.Maximum != nil
			s.hasSum = is.Sum != nil
			s.minimum = is.GetMinimum()
			s.maximum = is.GetMaximum()
			s.sum = is.GetSum()
		}
		return s

	case pb.Type_FLOAT, pb.Type_DOUBLE:
		s := &DoubleColumnStatistics{columnStatistics: base}
		if ds := stats.GetDoubleStatistics(); ds != nil {
			s.hasMinimum = ds.Minimum != nil
			s.hasMaximum = ds.Maximum != nil
			s.hasSum = ds.Sum != nil
			s.minimum = ds.GetMinimum()
			s.maximum = ds.GetMaximum()
			s.sum = ds.GetSum()
		}
		return s

	case pb.Type_STRING, pb.Type_CHAR, pb.Type_VARCHAR:
		s := &StringColumnStatistics{columnStatistics: base}
		if ss := stats.GetStringStatistics(); ss != nil {
			s.hasMinimum = ss.Minimum != nil
			s.hasMaximum = ss.Maximum != nil
			s.hasTotalLength = ss.Sum != nil
			s.minimum = ss.GetMinimum()
			s.maximum = ss.GetMaximum()
			s.totalLength = uint64(ss.GetSum())
		}
		return s

	case pb.Type_BOOLEAN:
		s := &BooleanColumnStatistics{columnStatistics: base}
		if bs := stats.GetBucketStatistics(); bs != nil && len(bs.Count) > 0 {
			s.hasCount = true
			s.trueCount = bs.Count[0]
		}
		return s

	case pb.Type_BINARY:
		s := &BinaryColumnStatistics{columnStatistics: base}
		if bs := stats.GetBinaryStatistics(); bs != nil {
			s.hasTotalLength = bs.Sum != nil
			s.totalLength = uint64(bs.GetSum())
		}
		return s

	case pb.Type_DATE:
		s := &DateColumnStatistics{columnStatistics: base}
		if ds := stats.GetDateStatistics(); ds != nil {
			s.hasMinimum = ds.Minimum != nil
			s.hasMaximum = ds.Maximum != nil
			s.minimum = ds.GetMinimum()
			s.maximum = ds.GetMaximum()
		}
		return s

	case pb.Type_TIMESTAMP:
		s := &TimestampColumnStatistics{columnStatistics: base}
		if ts := stats.GetTimestampStatistics(); ts != nil {
			s.hasMinimum = ts.Minimum != nil
			s.hasMaximum = ts.Maximum != nil
			s.minimum = ts.GetMinimum()
			s.maximum = ts.GetMaximum()
		}
		return s

	case pb.Type_DECIMAL:
		s := &DecimalColumnStatistics{columnStatistics: base}
		if ds := stats.GetDecimalStatistics(); ds != nil {
			s.hasMinimum = ds.Minimum != nil
			s.hasMaximum = ds.Maximum != nil
			s.hasSum = ds.Sum != nil
			s.minimum = ds.GetMinimum()
			s.maximum = ds.GetMaximum()
			s.sum = ds.GetSum()
		}
		return s

	default:
		return &base
	}
}

// StripeStatistics is the per-column statistics of a single stripe, parallel
// to the stripe directory. Column index 0 is the first field of the root.
type StripeStatistics struct {
	colStats []ColumnStatistics
}

func newStripeStatistics(stats *pb.StripeStatistics, schema *api.TypeDescription) *StripeStatistics {
	s := &StripeStatistics{}
	for i := 0; i < len(stats.GetColStats())-1 && i < schema.SubtypeCount(); i++ {
		s.colStats = append(s.colStats, convertColumnStatistics(schema.Subtype(i), stats.GetColStats()[i+1]))
	}
	return s
}

func (s *StripeStatistics) GetNumberOfColumnStatistics() int {
	return len(s.colStats)
}

func (s *StripeStatistics) GetColumnStatisticsInStripe(colIndex int) (ColumnStatistics, error) {
	if colIndex < 0 || colIndex >= len(s.colStats) {
		return nil, errors.WithStack(common.OutOfRange{Field: "column index"})
	}
	return s.colStats[colIndex], nil
}
