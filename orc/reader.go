package orc

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/haohui/orc/orc/api"
	"github.com/haohui/orc/orc/column"
	"github.com/haohui/orc/orc/common"
	"github.com/haohui/orc/orc/config"
	orcio "github.com/haohui/orc/orc/io"
	"github.com/haohui/orc/orc/stream"
	"github.com/haohui/orc/pb/pb"
)

// StripeInformation describes one stripe of the file.
type StripeInformation struct {
	offset       uint64
	indexLength  uint64
	dataLength   uint64
	footerLength uint64
	numberOfRows uint64
}

func (s StripeInformation) Offset() uint64       { return s.offset }
func (s StripeInformation) IndexLength() uint64  { return s.indexLength }
func (s StripeInformation) DataLength() uint64   { return s.dataLength }
func (s StripeInformation) FooterLength() uint64 { return s.footerLength }
func (s StripeInformation) NumberOfRows() uint64 { return s.numberOfRows }

func (s StripeInformation) Length() uint64 {
	return s.indexLength + s.dataLength + s.footerLength
}

// Reader is the public read capability over one file.
type Reader interface {
	Type() *api.TypeDescription
	NumberOfRows() uint64
	ContentLength() uint64
	Compression() pb.CompressionKind
	CompressionSize() uint64
	RowIndexStride() uint64

	NumberOfStripes() uint64
	Stripe(i uint64) (StripeInformation, error)
	StripeStatistics(i uint64) (*StripeStatistics, error)
	Statistics() []ColumnStatistics
	ColumnStatistics(index uint64) (ColumnStatistics, error)
	SelectedColumns() []bool

	MetadataKeys() []string
	MetadataValue(key string) (string, error)
	HasMetadataValue(key string) bool

	CreateRowBatch(capacity int) (api.ColumnVectorBatch, error)
	Next(batch api.ColumnVectorBatch) (bool, error)
	RowNumber() uint64
	SeekToRow(rowNumber uint64) error

	Name() string
	Close() error
}

type fileReader struct {
	in   orcio.File
	opts *config.ReaderOptions

	postscript       *pb.PostScript
	postscriptLength uint64
	compression      pb.CompressionKind
	blockSize        uint64

	footer   *pb.Footer
	metadata *pb.Metadata
	schema   *api.TypeDescription

	selectedColumns  []bool
	firstRowOfStripe []uint64

	previousRow         uint64
	currentStripe       int
	lastStripe          int // inclusive
	currentRowInStripe  uint64
	rowsInCurrentStripe uint64
	stripeFooter        *pb.StripeFooter
	root                column.Reader

	err error // a failed stripe poisons the reader
}

// Open parses the file tail of the byte source and returns a reader over it.
func Open(in orcio.File, opts *config.ReaderOptions) (Reader, error) {
	if opts == nil {
		opts = config.NewReaderOptions()
	}
	r := &fileReader{in: in, opts: opts}

	size := common.Min(opts.TailLocation, in.Size())
	readSize := common.Min(size, directorySizeGuess)
	if readSize < 1 {
		return nil, errors.WithStack(common.ParseError{What: "file size too small"})
	}

	buffer := make([]byte, readSize)
	if err := in.ReadAt(buffer, size-readSize); err != nil {
		return nil, err
	}
	if err := r.readPostscript(buffer); err != nil {
		return nil, err
	}
	if v := r.postscript.GetVersion(); len(v) >= 2 && (v[0] > 0 || v[1] > 12) && opts.ErrorStream != nil {
		fmt.Fprintf(opts.ErrorStream, "%s was written by a newer version %d.%d than this reader understands\n",
			in.Name(), v[0], v[1])
	}
	if err := r.readFooter(buffer, size); err != nil {
		return nil, err
	}
	if err := r.readMetadata(size); err != nil {
		return nil, err
	}

	schema, err := api.SchemaFromTypes(r.footer.GetTypes())
	if err != nil {
		return nil, err
	}
	schema.AssignIds(0)
	r.schema = schema
	r.previousRow = math.MaxUint64

	// clamp [currentStripe, lastStripe] to stripes whose offset falls in the
	// requested range, saturating offset+length
	end := opts.Offset + opts.Length
	if end < opts.Offset {
		end = math.MaxUint64
	}
	stripes := r.footer.GetStripes()
	r.currentStripe = len(stripes)
	r.lastStripe = -1
	var rowTotal uint64
	r.firstRowOfStripe = make([]uint64, len(stripes))
	for i, si := range stripes {
		r.firstRowOfStripe[i] = rowTotal
		rowTotal += si.GetNumberOfRows()
		if si.GetOffset() >= opts.Offset && si.GetOffset() < end {
			if i < r.currentStripe {
				r.currentStripe = i
			}
			if i > r.lastStripe {
				r.lastStripe = i
			}
		}
	}

	r.selectedColumns = make([]bool, len(r.footer.GetTypes()))
	for _, id := range opts.Include {
		if int(id) < len(r.selectedColumns) {
			r.selectTypeParent(id)
			r.selectTypeChildren(id)
		}
	}
	return r, nil
}

// ensureOrcFooter verifies the magic immediately before the postscript,
// falling back to the head of the file for pre-0.12 layouts.
func (r *fileReader) ensureOrcFooter(buffer []byte) error {
	magicLength := uint64(len(Magic))
	if r.postscriptLength < magicLength+1 {
		return errors.WithStack(common.ParseError{What: "invalid postscript length"})
	}
	trailer := uint64(len(buffer)) - 1 - r.postscriptLength
	if trailer >= magicLength && bytes.Equal(buffer[trailer-magicLength:trailer], []byte(Magic)) {
		return nil
	}
	head := make([]byte, magicLength)
	if err := r.in.ReadAt(head, 0); err != nil {
		return err
	}
	if !bytes.Equal(head, []byte(Magic)) {
		return errors.WithStack(common.ParseError{What: "not an ORC file"})
	}
	return nil
}

func (r *fileReader) readPostscript(buffer []byte) error {
	readSize := uint64(len(buffer))
	r.postscriptLength = uint64(buffer[readSize-1]) & 0xff
	if r.postscriptLength+1 > readSize {
		return errors.WithStack(common.ParseError{What: "invalid postscript length"})
	}

	if err := r.ensureOrcFooter(buffer); err != nil {
		return err
	}

	r.postscript = &pb.PostScript{}
	psStart := readSize - 1 - r.postscriptLength
	if err := proto.Unmarshal(buffer[psStart:readSize-1], r.postscript); err != nil {
		return errors.WithStack(common.ParseError{What: "failed to parse the postscript"})
	}
	if r.postscript.CompressionBlockSize != nil {
		r.blockSize = r.postscript.GetCompressionBlockSize()
	} else {
		r.blockSize = defaultCompressionBlockSize
	}
	r.compression = r.postscript.GetCompression()
	logger.Tracef("postscript of %s: %s", r.in.Name(), r.postscript.String())
	return nil
}

func (r *fileReader) readFooter(buffer []byte, fileLength uint64) error {
	readSize := uint64(len(buffer))
	footerSize := r.postscript.GetFooterLength()
	tailSize := 1 + r.postscriptLength + footerSize

	var footerBuf []byte
	if tailSize > readSize {
		// the guess missed; fetch the missing prefix and stitch
		extra := tailSize - readSize
		footerBuf = make([]byte, footerSize)
		if err := r.in.ReadAt(footerBuf[:extra], fileLength-tailSize); err != nil {
			return err
		}
		copy(footerBuf[extra:], buffer[:readSize-1-r.postscriptLength])
	} else {
		footerBuf = buffer[readSize-tailSize : readSize-1-r.postscriptLength]
	}

	decompressed, err := r.decompressedBytes(footerBuf)
	if err != nil {
		return err
	}
	r.footer = &pb.Footer{}
	if err := proto.Unmarshal(decompressed, r.footer); err != nil {
		return errors.WithStack(common.ParseError{What: "failed to parse the footer"})
	}
	return nil
}

func (r *fileReader) readMetadata(fileLength uint64) error {
	metadataSize := r.postscript.GetMetadataLength()
	r.metadata = &pb.Metadata{}
	if metadataSize == 0 {
		return nil
	}
	position := fileLength - 1 - r.postscriptLength - r.postscript.GetFooterLength() - metadataSize
	buffer := make([]byte, metadataSize)
	if err := r.in.ReadAt(buffer, position); err != nil {
		return err
	}
	decompressed, err := r.decompressedBytes(buffer)
	if err != nil {
		return err
	}
	if err := proto.Unmarshal(decompressed, r.metadata); err != nil {
		return errors.WithStack(common.ParseError{What: "failed to parse the metadata"})
	}
	return nil
}

// decompressedBytes runs a trailer section through a fresh decompressor.
func (r *fileReader) decompressedBytes(data []byte) ([]byte, error) {
	in, err := stream.NewDecompressStream(stream.NewSeekableArrayStream(data, 0), r.compression, r.blockSize)
	if err != nil {
		return nil, err
	}
	var out []byte
	for {
		w, err := in.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, w...)
	}
}

// selectTypeParent marks the ancestors of columnId by walking every possible
// parent and checking its subtype list.
func (r *fileReader) selectTypeParent(columnId uint32) {
	types := r.footer.GetTypes()
	for parent := uint32(0); parent < columnId; parent++ {
		for _, child := range types[parent].GetSubtypes() {
			if child == columnId {
				if !r.selectedColumns[parent] {
					r.selectedColumns[parent] = true
					r.selectTypeParent(parent)
				}
				return
			}
		}
	}
}

func (r *fileReader) selectTypeChildren(columnId uint32) {
	if !r.selectedColumns[columnId] {
		r.selectedColumns[columnId] = true
		for _, child := range r.footer.GetTypes()[columnId].GetSubtypes() {
			r.selectTypeChildren(child)
		}
	}
}

func (r *fileReader) Type() *api.TypeDescription {
	return r.schema
}

func (r *fileReader) NumberOfRows() uint64 {
	return r.footer.GetNumberOfRows()
}

func (r *fileReader) ContentLength() uint64 {
	return r.footer.GetContentLength()
}

func (r *fileReader) Compression() pb.CompressionKind {
	return r.compression
}

func (r *fileReader) CompressionSize() uint64 {
	return r.blockSize
}

func (r *fileReader) RowIndexStride() uint64 {
	return uint64(r.footer.GetRowIndexStride())
}

func (r *fileReader) NumberOfStripes() uint64 {
	return uint64(len(r.footer.GetStripes()))
}

func (r *fileReader) Stripe(i uint64) (StripeInformation, error) {
	stripes := r.footer.GetStripes()
	if i >= uint64(len(stripes)) {
		return StripeInformation{}, errors.WithStack(common.OutOfRange{Field: "stripe index"})
	}
	si := stripes[i]
	return StripeInformation{
		offset:       si.GetOffset(),
		indexLength:  si.GetIndexLength(),
		dataLength:   si.GetDataLength(),
		footerLength: si.GetFooterLength(),
		numberOfRows: si.GetNumberOfRows(),
	}, nil
}

func (r *fileReader) StripeStatistics(i uint64) (*StripeStatistics, error) {
	stats := r.metadata.GetStripeStats()
	if i >= uint64(len(stats)) {
		return nil, errors.WithStack(common.OutOfRange{Field: "stripe index"})
	}
	return newStripeStatistics(stats[i], r.schema), nil
}

// Statistics returns the file-level statistics, one view per field of the
// root type.
func (r *fileReader) Statistics() []ColumnStatistics {
	var result []ColumnStatistics
	stats := r.footer.GetStatistics()
	for i := 0; i < r.schema.SubtypeCount() && i+1 < len(stats); i++ {
		result = append(result, convertColumnStatistics(r.schema.Subtype(i), stats[i+1]))
	}
	return result
}

func (r *fileReader) ColumnStatistics(index uint64) (ColumnStatistics, error) {
	stats := r.footer.GetStatistics()
	if index+1 >= uint64(len(stats)) {
		return nil, errors.WithStack(common.OutOfRange{Field: "column index"})
	}
	return convertColumnStatistics(r.schema.Subtype(int(index)), stats[index+1]), nil
}

func (r *fileReader) SelectedColumns() []bool {
	return r.selectedColumns
}

func (r *fileReader) MetadataKeys() []string {
	var keys []string
	for _, item := range r.footer.GetMetadata() {
		keys = append(keys, item.GetName())
	}
	return keys
}

func (r *fileReader) MetadataValue(key string) (string, error) {
	for _, item := range r.footer.GetMetadata() {
		if item.GetName() == key {
			return string(item.GetValue()), nil
		}
	}
	return "", errors.WithStack(common.OutOfRange{Field: "metadata"})
}

func (r *fileReader) HasMetadataValue(key string) bool {
	for _, item := range r.footer.GetMetadata() {
		if item.GetName() == key {
			return true
		}
	}
	return false
}

func (r *fileReader) CreateRowBatch(capacity int) (api.ColumnVectorBatch, error) {
	if capacity <= 0 {
		capacity = r.opts.RowSize
	}
	return api.CreateRowBatch(r.schema, r.selectedColumns, capacity)
}

// stripeStreams resolves (columnId, streamKind) pairs against the current
// stripe footer, accumulating stream offsets from the stripe start.
type stripeStreams struct {
	r           *fileReader
	footer      *pb.StripeFooter
	stripeStart uint64
}

func (s stripeStreams) GetSelectedColumns() []bool {
	return s.r.selectedColumns
}

func (s stripeStreams) GetEncoding(columnId uint32) (*pb.ColumnEncoding, error) {
	columns := s.footer.GetColumns()
	if columnId >= uint32(len(columns)) {
		return nil, errors.WithStack(common.ParseError{What: fmt.Sprintf("stripe footer has no encoding for column %d", columnId)})
	}
	return columns[columnId], nil
}

func (s stripeStreams) GetStream(columnId uint32, kind pb.Stream_Kind) (stream.InputStream, error) {
	offset := s.stripeStart
	for _, si := range s.footer.GetStreams() {
		if si.GetKind() == kind && si.GetColumn() == columnId {
			fs := stream.NewSeekableFileStream(s.r.in, offset, si.GetLength(), int(s.r.blockSize))
			return stream.NewDecompressStream(fs, s.r.compression, s.r.blockSize)
		}
		offset += si.GetLength()
	}
	return nil, nil
}

func (s stripeStreams) GetReaderOptions() *config.ReaderOptions {
	return s.r.opts
}

func (r *fileReader) startNextStripe() error {
	si := r.footer.GetStripes()[r.currentStripe]
	footerStart := si.GetOffset() + si.GetIndexLength() + si.GetDataLength()
	buffer := make([]byte, si.GetFooterLength())
	if err := r.in.ReadAt(buffer, footerStart); err != nil {
		return err
	}
	decompressed, err := r.decompressedBytes(buffer)
	if err != nil {
		return err
	}
	r.stripeFooter = &pb.StripeFooter{}
	if err := proto.Unmarshal(decompressed, r.stripeFooter); err != nil {
		return errors.WithStack(common.ParseError{
			What:   fmt.Sprintf("bad stripe footer in %s", r.in.Name()),
			Offset: footerStart,
		})
	}
	r.rowsInCurrentStripe = si.GetNumberOfRows()

	root, err := column.NewReader(r.schema, stripeStreams{r: r, footer: r.stripeFooter, stripeStart: si.GetOffset()})
	if err != nil {
		return err
	}
	r.root = root
	logger.Tracef("stripe %d of %s started, %d rows", r.currentStripe, r.in.Name(), r.rowsInCurrentStripe)
	return nil
}

func (r *fileReader) Next(batch api.ColumnVectorBatch) (bool, error) {
	if r.err != nil {
		batch.Base().NumElements = 0
		return false, r.err
	}
	if r.lastStripe < 0 || r.currentStripe > r.lastStripe {
		batch.Base().NumElements = 0
		if r.lastStripe >= 0 {
			r.previousRow = r.firstRowOfStripe[r.lastStripe] +
				r.footer.GetStripes()[r.lastStripe].GetNumberOfRows()
		}
		return false, nil
	}
	if r.currentRowInStripe == 0 {
		if err := r.startNextStripe(); err != nil {
			r.err = err
			batch.Base().NumElements = 0
			return false, err
		}
	}
	rowsToRead := common.Min(uint64(batch.Capacity()), r.rowsInCurrentStripe-r.currentRowInStripe)
	if err := r.root.Next(batch, int(rowsToRead), nil); err != nil {
		r.err = err
		batch.Base().NumElements = 0
		return false, err
	}
	batch.Base().NumElements = int(rowsToRead)
	r.previousRow = r.firstRowOfStripe[r.currentStripe] + r.currentRowInStripe
	r.currentRowInStripe += rowsToRead
	if r.currentRowInStripe >= r.rowsInCurrentStripe {
		r.currentStripe++
		r.currentRowInStripe = 0
	}
	return rowsToRead != 0, nil
}

func (r *fileReader) RowNumber() uint64 {
	return r.previousRow
}

func (r *fileReader) SeekToRow(uint64) error {
	return errors.WithStack(common.NotImplemented{Feature: "seek to row"})
}

func (r *fileReader) Name() string {
	return r.in.Name()
}

func (r *fileReader) Close() error {
	return r.in.Close()
}
