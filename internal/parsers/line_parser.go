package parsers

import (
	"bufio"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"

	"access-log-stats/internal/models"
	"access-log-stats/internal/shared/filestorages"
	"access-log-stats/internal/shared/loggers"
	"access-log-stats/internal/shared/metrics"
)

const initialLineBufferBytes = 64 * 1024

// combinedLogPattern matches one Combined Log Format line, anchored at both ends:
//
//	10.0.0.1 - - [10/Oct/2000:13:55:36 -0700] "GET /index.html HTTP/1.1" 200 2326 "http://example.com/" "Mozilla/5.0"
//
// The bytes field must be followed by a space; anything may then sit before the
// quoted referrer.
var combinedLogPattern = regexp.MustCompile(`^(?P<ip>\S+) - - \[(?P<timestamp>[^\]]+)\] ` +
	`"(?P<method>\S+) (?P<resource>\S+) HTTP/\S+" ` +
	`(?P<status>\d{3}) (?P<bytes>\d+|-) .*"(?P<referrer>[^"]+)" ` +
	`"(?P<user_agent>[^"]+)"$`)

var (
	groupIP        = combinedLogPattern.SubexpIndex("ip")
	groupTimestamp = combinedLogPattern.SubexpIndex("timestamp")
	groupMethod    = combinedLogPattern.SubexpIndex("method")
	groupResource  = combinedLogPattern.SubexpIndex("resource")
	groupStatus    = combinedLogPattern.SubexpIndex("status")
	groupBytes     = combinedLogPattern.SubexpIndex("bytes")
	groupReferrer  = combinedLogPattern.SubexpIndex("referrer")
	groupUserAgent = combinedLogPattern.SubexpIndex("user_agent")
)

// ParseLine extracts a LogRecord from a single line without its line terminator.
// ok is false when the line is not in Combined Log Format.
func ParseLine(line string) (record *models.LogRecord, ok bool) {
	m := combinedLogPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return nil, false
	}
	return &models.LogRecord{
		ClientIP:  m[groupIP],
		Timestamp: m[groupTimestamp],
		Method:    m[groupMethod],
		Resource:  m[groupResource],
		Status:    m[groupStatus],
		Bytes:     m[groupBytes],
		Referrer:  m[groupReferrer],
		UserAgent: m[groupUserAgent],
	}, true
}

// RecordSequence yields the records of one input, once. Lines that do not match are
// skipped and counted.
type RecordSequence interface {
	// Scan advances to the next matching record. It returns false at the end of input or on error.
	Scan() bool
	Record() *models.LogRecord
	Err() error

	LinesRead() int64
	Skipped() int64

	Close() error
}

type LineParser interface {
	// Records wraps r in a lazy record sequence.
	Records(ctx context.Context, r io.Reader) RecordSequence
	// Open opens key in storage and wraps it in a lazy record sequence.
	Open(ctx context.Context, storage filestorages.FileStorage, key string) (RecordSequence, error)
}

type lineParser struct {
	maxLineBytes int
}

func NewLineParser(maxLineBytes int) LineParser {
	return &lineParser{maxLineBytes: maxLineBytes}
}

func (p *lineParser) Open(ctx context.Context, storage filestorages.FileStorage, key string) (RecordSequence, error) {
	readCloser, err := storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, errInputNotFound(key, err)
		}
		return nil, errInputOpenFailed(key, err)
	}

	seq := p.newRecordScanner(ctx, readCloser)
	seq.closer = readCloser
	return seq, nil
}

func (p *lineParser) Records(ctx context.Context, r io.Reader) RecordSequence {
	return p.newRecordScanner(ctx, r)
}

func (p *lineParser) newRecordScanner(ctx context.Context, r io.Reader) *recordScanner {
	scanner := bufio.NewScanner(r)
	bufSize := initialLineBufferBytes
	if p.maxLineBytes < bufSize {
		bufSize = p.maxLineBytes
	}
	scanner.Buffer(make([]byte, 0, bufSize), p.maxLineBytes)

	return &recordScanner{ctx: ctx, scanner: scanner}
}

type recordScanner struct {
	ctx     context.Context
	scanner *bufio.Scanner
	closer  io.Closer

	record    *models.LogRecord
	err       error
	linesRead int64
	skipped   int64
}

func (s *recordScanner) Scan() bool {
	s.record = nil
	if s.err != nil {
		return false
	}

	for s.scanner.Scan() {
		s.linesRead++

		record, ok := ParseLine(s.scanner.Text())
		if !ok {
			s.skipped++
			metricLinesTotal.WithLabelValues(metrics.ValueSkipped).Inc()
			loggers.Ctx(s.ctx).Debug().
				Int64(loggers.FieldLineNumber, s.linesRead).
				Msg("line skipped: not in combined log format")
			continue
		}

		metricLinesTotal.WithLabelValues(metrics.ValueMatched).Inc()
		s.record = record
		return true
	}

	if err := s.scanner.Err(); err != nil {
		s.err = errInputReadFailed(s.linesRead+1, err)
	}
	return false
}

func (s *recordScanner) Record() *models.LogRecord {
	return s.record
}

func (s *recordScanner) Err() error {
	return s.err
}

func (s *recordScanner) LinesRead() int64 {
	return s.linesRead
}

func (s *recordScanner) Skipped() int64 {
	return s.skipped
}

func (s *recordScanner) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
