// Package handlers exposes the codec and fragmentation orchestrator
// over HTTP: multipart upload in, binary or JSON out, in the teacher's
// own style (gin.Context handlers, a shared Handlers struct holding
// injected services, a sendError helper for a uniform error body).
package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kodestego/lsbstego/fragment"
	"github.com/kodestego/lsbstego/framecodec"
	"github.com/kodestego/lsbstego/logging"
	"github.com/kodestego/lsbstego/models"
	"github.com/kodestego/lsbstego/service"
)

const maxUploadBytes = 100 * 1024 * 1024

// Handlers holds service dependencies, injected at startup by main.go.
type Handlers struct {
	steganographyService service.SteganographyService
	cryptographyService  service.CryptographyService
	audioService         service.AudioService
	logger               *zap.SugaredLogger
}

// NewHandlers creates a new handlers instance with service dependencies.
func NewHandlers(
	stegoService service.SteganographyService,
	cryptoService service.CryptographyService,
	audioSvc service.AudioService,
	logger *zap.SugaredLogger,
) *Handlers {
	return &Handlers{
		steganographyService: stegoService,
		cryptographyService:  cryptoService,
		audioService:         audioSvc,
		logger:               logger,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// HealthHandler handles the health check endpoint.
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
	})
}

// CalculateCapacityHandler reports whether a payload of the declared
// length would fit into a cover of the declared size under the given
// options, without either file being uploaded.
func (h *Handlers) CalculateCapacityHandler(c *gin.Context) {
	startTime := time.Now()
	reqID := requestID(c)

	var req models.CapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Error(h.logger, "[%s] CalculateCapacityHandler: invalid JSON body: %v", reqID, err)
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON request body")
		return
	}

	opts, err := req.Options.ToOptions()
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error())
		return
	}

	breakdown, err := h.steganographyService.CalculateCapacity(req.PayloadLen, req.CoverFileSize, opts)
	fits := err == nil

	processingTime := int(time.Since(startTime).Milliseconds())
	c.Header("X-Processing-Time", strconv.Itoa(processingTime))
	c.JSON(http.StatusOK, models.CapacityResponseFrom(breakdown, fits))
}

// parseOptionsForm reads an "options" JSON form field, falling back
// to Options.Default()'s wire form when absent.
func parseOptionsForm(c *gin.Context) (models.OptionsDTO, error) {
	raw := c.PostForm("options")
	if raw == "" {
		return models.OptionsDTO{DataBlockSize: 1, StartingEndian: "BIG"}, nil
	}
	var dto models.OptionsDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return models.OptionsDTO{}, err
	}
	return dto, nil
}

// EmbedHandler embeds a secret file into a cover file using the
// requested options, returning the byte-length-identical stego file.
func (h *Handlers) EmbedHandler(c *gin.Context) {
	startTime := time.Now()
	reqID := requestID(c)
	logging.Info(h.logger, "[%s] EmbedHandler: request from %s", reqID, c.ClientIP())

	coverHeader, err := c.FormFile("cover")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILES", models.ErrMissingCoverFile.Error())
		return
	}
	payloadHeader, err := c.FormFile("payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILES", models.ErrMissingPayloadFile.Error())
		return
	}
	if coverHeader.Size > maxUploadBytes || payloadHeader.Size > maxUploadBytes {
		sendError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", models.ErrFileTooLarge.Error())
		return
	}

	cover, err := readFormFile(coverHeader)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read cover file")
		return
	}
	payload, err := readFormFile(payloadHeader)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read payload file")
		return
	}

	optsDTO, err := parseOptionsForm(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", "options field must be valid JSON")
		return
	}
	opts, err := optsDTO.ToOptions()
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error())
		return
	}

	useVigenere := c.PostForm("useVigenere") == "true"
	vigenereKey := c.PostForm("vigenereKey")
	if useVigenere {
		if vigenereKey == "" {
			sendError(c, http.StatusBadRequest, "MISSING_KEY", models.ErrVigenereKeyRequired.Error())
			return
		}
		payload = h.cryptographyService.VigenereCipher(payload, vigenereKey)
	}

	stego, result, err := h.steganographyService.Embed(cover, payload, opts)
	if err != nil {
		logging.Error(h.logger, "[%s] EmbedHandler: %v", reqID, err)
		sendError(c, http.StatusUnprocessableEntity, "PROCESSING_ERROR", err.Error())
		return
	}
	if result != framecodec.EncodingSuccessful {
		sendError(c, http.StatusUnprocessableEntity, "ENCODE_FAILED", result.String())
		return
	}

	processingTime := int(time.Since(startTime).Milliseconds())
	psnr := h.audioService.CalculatePSNRForCover(cover, stego, coverHeader.Filename)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "stego_"+coverHeader.Filename))
	c.Header("X-PSNR-Value", fmt.Sprintf("%.2f", psnr))
	c.Header("X-Secret-Size", strconv.Itoa(len(payload)))
	c.Header("X-Processing-Time", strconv.Itoa(processingTime))
	c.Data(http.StatusOK, "application/octet-stream", stego)
}

// ExtractHandler recovers the hidden payload from a stego file using
// the supplied options.
func (h *Handlers) ExtractHandler(c *gin.Context) {
	startTime := time.Now()
	reqID := requestID(c)
	logging.Info(h.logger, "[%s] ExtractHandler: request from %s", reqID, c.ClientIP())

	stegoHeader, err := c.FormFile("stego")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILE", "Stego file not provided")
		return
	}
	stego, err := readFormFile(stegoHeader)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read stego file")
		return
	}

	optsDTO, err := parseOptionsForm(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", "options field must be valid JSON")
		return
	}
	opts, err := optsDTO.ToOptions()
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error())
		return
	}

	payload, result, err := h.steganographyService.Extract(stego, opts)
	if err != nil {
		logging.Error(h.logger, "[%s] ExtractHandler: %v", reqID, err)
		sendError(c, http.StatusUnprocessableEntity, "EXTRACTION_ERROR", err.Error())
		return
	}

	useVigenere := c.PostForm("useVigenere") == "true"
	vigenereKey := c.PostForm("vigenereKey")
	if useVigenere && result == framecodec.DecodingSuccessful {
		payload = h.cryptographyService.VigenereCipher(payload, vigenereKey)
	}

	processingTime := int(time.Since(startTime).Milliseconds())
	c.Header("X-Processing-Time", strconv.Itoa(processingTime))
	c.Header("X-Secret-Size", strconv.Itoa(len(payload)))

	if result != framecodec.DecodingSuccessful {
		c.JSON(http.StatusOK, models.ExtractResponse{Result: result.String()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\"extracted.bin\"")
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// FragmentEmbedHandler drives a multi-cover embed: cover files arrive
// as multipart files keyed by the manifest's CoverField names, the
// payload arrives as a single file, and a JSON "manifest" field lists
// how to slice the payload across them.
func (h *Handlers) FragmentEmbedHandler(c *gin.Context) {
	reqID := requestID(c)
	logging.Info(h.logger, "[%s] FragmentEmbedHandler: request from %s", reqID, c.ClientIP())

	var req models.FragmentEmbedRequest
	if err := json.Unmarshal([]byte(c.PostForm("manifest")), &req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_MANIFEST", "manifest field must be valid JSON")
		return
	}

	payloadHeader, err := c.FormFile("payload")
	if err != nil {
		sendError(c, http.StatusBadRequest, "MISSING_FILES", models.ErrMissingPayloadFile.Error())
		return
	}
	payload, err := readFormFile(payloadHeader)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read payload file")
		return
	}

	entries := make([]fragment.EncodeEntry, len(req.Entries))
	buffers := make([]*bytes.Buffer, len(req.Entries))

	for i, entryDTO := range req.Entries {
		coverHeader, err := c.FormFile(entryDTO.CoverField)
		if err != nil {
			sendError(c, http.StatusBadRequest, "MISSING_FILES", fmt.Sprintf("cover field %q not found", entryDTO.CoverField))
			return
		}
		cover, err := readFormFile(coverHeader)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read cover file")
			return
		}
		opts, err := entryDTO.Options.ToOptions()
		if err != nil {
			sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error())
			return
		}

		buffers[i] = &bytes.Buffer{}
		entries[i] = fragment.EncodeEntry{
			Cover:              bytes.NewReader(cover),
			CoverLen:           int64(len(cover)),
			Destination:        buffers[i],
			DataAmountToEncode: entryDTO.DataAmountToEncode,
			Options:            opts,
		}
	}

	result, err := h.steganographyService.EmbedFragmented(entries, payload, int64(len(payload)))
	if err != nil {
		logging.Error(h.logger, "[%s] FragmentEmbedHandler: %v", reqID, err)
		sendError(c, http.StatusUnprocessableEntity, "PROCESSING_ERROR", err.Error())
		return
	}
	if result != framecodec.EncodingSuccessful {
		sendError(c, http.StatusUnprocessableEntity, "ENCODE_FAILED", result.String())
		return
	}

	stegoFiles := make([]string, len(buffers))
	for i, buf := range buffers {
		stegoFiles[i] = base64.StdEncoding.EncodeToString(buf.Bytes())
	}
	c.JSON(http.StatusOK, gin.H{"stegoFilesBase64": stegoFiles})
}

// FragmentExtractHandler drives a multi-cover decode: stego files
// arrive as multipart files keyed by the manifest's StegoField names.
func (h *Handlers) FragmentExtractHandler(c *gin.Context) {
	reqID := requestID(c)
	logging.Info(h.logger, "[%s] FragmentExtractHandler: request from %s", reqID, c.ClientIP())

	var req models.FragmentExtractRequest
	if err := json.Unmarshal([]byte(c.PostForm("manifest")), &req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_MANIFEST", "manifest field must be valid JSON")
		return
	}

	entries := make([]fragment.DecodeEntry, len(req.Entries))
	for i, entryDTO := range req.Entries {
		stegoHeader, err := c.FormFile(entryDTO.StegoField)
		if err != nil {
			sendError(c, http.StatusBadRequest, "MISSING_FILES", fmt.Sprintf("stego field %q not found", entryDTO.StegoField))
			return
		}
		stego, err := readFormFile(stegoHeader)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "PROCESSING_ERROR", "Failed to read stego file")
			return
		}
		opts, err := entryDTO.Options.ToOptions()
		if err != nil {
			sendError(c, http.StatusBadRequest, "INVALID_OPTIONS", err.Error())
			return
		}
		entries[i] = fragment.DecodeEntry{Stego: bytes.NewReader(stego), Options: opts}
	}

	payload, result, err := h.steganographyService.ExtractFragmented(entries)
	if err != nil {
		logging.Error(h.logger, "[%s] FragmentExtractHandler: %v", reqID, err)
		sendError(c, http.StatusUnprocessableEntity, "EXTRACTION_ERROR", err.Error())
		return
	}
	if result != framecodec.DecodingSuccessful {
		c.JSON(http.StatusOK, models.FragmentExtractResponse{Result: result.String()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\"extracted.bin\"")
	c.Data(http.StatusOK, "application/octet-stream", payload)
}

// sendError sends a standardized error response.
func sendError(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, models.ErrorResponse{
		Success: false,
		Error: models.ErrorDetail{
			Message: message,
			Details: map[string]interface{}{"code": code},
		},
	})
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get("trace_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}

func readFormFile(h *multipart.FileHeader) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
