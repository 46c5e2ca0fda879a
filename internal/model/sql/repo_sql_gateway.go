package sql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Row 一行查询结果，列名到值。值已经过 normalizeValue 统一。
type Row map[string]any

// Rows 查询结果集，没有结果时为空切片而不是 nil
type Rows []Row

// ExecResult 写语句的执行结果
type ExecResult struct {
	RowsAffected int64
}

// String 以字符串读取列值
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// Int64 以整数读取列值，无法识别时返回 0
func (r Row) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			if f, ferr := strconv.ParseFloat(v, 64); ferr == nil {
				return int64(f)
			}
			return 0
		}
		return n
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Query 执行参数化查询并返回统一格式的结果
func (r *GormRepository) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	logrus.WithFields(logrus.Fields{"sql": query, "args": args}).Debug("executing query")

	var raw []map[string]any
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&raw).Error; err != nil {
		logrus.WithError(err).WithField("sql", query).Error("query failed")
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return normalizeRows(raw), nil
}

// QueryFirst 返回第一行。出错时只记录日志并视为不存在。
func (r *GormRepository) QueryFirst(ctx context.Context, query string, args ...any) (Row, bool) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil || len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

// Exec 执行写语句，错误向上传递
func (r *GormRepository) Exec(ctx context.Context, query string, args ...any) (ExecResult, error) {
	if r == nil || r.db == nil {
		return ExecResult{}, ErrNotConfigured
	}
	logrus.WithFields(logrus.Fields{"sql": query, "args": args}).Debug("executing statement")

	result := r.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		logrus.WithError(result.Error).WithField("sql", query).Error("statement failed")
		return ExecResult{}, fmt.Errorf("exec failed: %w", result.Error)
	}
	return ExecResult{RowsAffected: result.RowsAffected}, nil
}

// normalizeRows 抹平不同驱动返回值的差异：MySQL 文本列是 []byte，
// 计数可能是各种宽度的整数或浮点数
func normalizeRows(raw []map[string]any) Rows {
	rows := make(Rows, 0, len(raw))
	for _, m := range raw {
		if m == nil {
			continue
		}
		row := make(Row, len(m))
		for k, v := range m {
			row[k] = normalizeValue(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return int64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}
