package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"consent-theater/internal/config"
	"consent-theater/internal/datastore"
	"consent-theater/internal/domain/models"
	"consent-theater/internal/taxonomy"
	"consent-theater/pkg/logger"
)

// knownEndpoints are the scanner transfer-server paths a URL may point at
// directly. A URL ending in none of these is treated as a base URL and goes
// through auto-discovery.
var knownEndpoints = []string{"/scan", "/scan/raw", "/pcap", "/pcap/json", "/contacts", "/export"}

// Ingestor runs the three ingestion modes — file upload, single endpoint,
// base-URL auto-discovery — and replaces the dataset snapshot on success.
// On any failure the prior snapshot stays active.
type Ingestor struct {
	store       *datastore.Store
	normalizer  *Normalizer
	placeholder []models.Contact
	httpClient  *http.Client
	maxBody     int64
	logger      *logger.Logger
}

// NewIngestor creates a new Ingestor.
func NewIngestor(store *datastore.Store, normalizer *Normalizer, cfg config.IngestConfig, log *logger.Logger) *Ingestor {
	maxBody := cfg.MaxUploadBytes
	if maxBody <= 0 {
		maxBody = 16 << 20
	}
	return &Ingestor{
		store:       store,
		normalizer:  normalizer,
		placeholder: taxonomy.PlaceholderContacts,
		httpClient:  &http.Client{Timeout: cfg.FetchTimeout},
		maxBody:     maxBody,
		logger:      log.WithComponent("ingestor"),
	}
}

// IngestFile ingests an uploaded JSON document with best-effort semantics:
// recognized shapes replace the relevant snapshot parts, unrecognized shapes
// are logged and ignored (nil dataset, nil error), and malformed JSON is
// logged and returned as a ParseError without touching the snapshot.
func (i *Ingestor) IngestFile(ctx context.Context, data []byte) (*models.Dataset, error) {
	payload, err := i.normalizer.DetectPayload(data)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			if entries, ok := DetectNetworkLog(data); ok {
				return i.replaceLog(entries), nil
			}
			i.logger.Warn().Str("reason", formatErr.Message).Msg("ignoring unrecognized file upload")
			return nil, nil
		}
		i.logger.Warn().Err(err).Msg("file upload is not valid JSON")
		return nil, err
	}

	ds, err := i.applyPayload(payload)
	if err != nil {
		i.logger.Warn().Err(err).Msg("ignoring file upload that failed normalization")
		return nil, nil
	}
	return ds, nil
}

// IngestURL ingests from a URL. A URL ending in a known scanner endpoint is
// fetched once; anything else is treated as a base URL and auto-discovered.
// Errors are surfaced to the caller with the prior snapshot preserved.
func (i *Ingestor) IngestURL(ctx context.Context, rawURL string) (*models.Dataset, error) {
	target := strings.TrimRight(rawURL, "/")

	for _, endpoint := range knownEndpoints {
		if strings.HasSuffix(target, endpoint) {
			return i.ingestEndpoint(ctx, target)
		}
	}
	return i.discover(ctx, target)
}

// ingestEndpoint is single-endpoint URL mode: one fetch, one payload, and an
// explicit error for anything that does not route.
func (i *Ingestor) ingestEndpoint(ctx context.Context, url string) (*models.Dataset, error) {
	data, err := i.fetchJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	payload, err := i.normalizer.DetectPayload(data)
	if err != nil {
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			return nil, err
		}
		if entries, ok := DetectNetworkLog(data); ok {
			return i.replaceLog(entries), nil
		}
		if contacts, ok := DetectContacts(data); ok {
			return i.replaceContacts(contacts), nil
		}
		return nil, formatErr
	}

	return i.applyPayload(payload)
}

// discover is base-URL auto-discovery: four independent fetches joined
// before any merge logic runs, each one degrading to "absent" on failure.
func (i *Ingestor) discover(ctx context.Context, base string) (*models.Dataset, error) {
	urls := [4]string{base + "/scan", base + "/pcap/json", base + "/contacts", base}
	var results [4][]byte

	var wg sync.WaitGroup
	for idx, url := range urls {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			data, err := i.fetchJSON(ctx, url)
			if err != nil {
				i.logger.Debug().Str("url", url).Err(err).Msg("discovery fetch degraded to absent")
				return
			}
			results[idx] = data
		}(idx, url)
	}
	wg.Wait()

	// A combined payload from either scan endpoint or base path carries
	// everything and short-circuits the merge.
	var scan *models.ScanResult
	for _, data := range [][]byte{results[0], results[3]} {
		if data == nil || scan != nil {
			continue
		}
		payload, err := i.normalizer.DetectPayload(data)
		if err != nil {
			continue
		}
		if payload.Kind == PayloadCombined {
			ds, err := i.applyPayload(payload)
			if err != nil {
				continue
			}
			return ds, nil
		}
		scan = i.normalizeScanPayload(payload)
	}

	if scan == nil {
		return nil, &NoScanDataError{Base: base}
	}

	var vpnLog []models.NetworkLogEntry
	if results[1] != nil {
		if entries, ok := DetectNetworkLog(results[1]); ok {
			vpnLog = entries
		}
	}

	var contacts []models.Contact
	if results[2] != nil {
		if parsed, ok := DetectContacts(results[2]); ok {
			contacts = parsed
		}
	}

	return i.store.Replace(scan, vpnLog, i.contactsOr(contacts)), nil
}

// applyPayload replaces the snapshot according to the payload kind. Scan
// payloads keep the prior log and contacts; combined payloads replace
// everything.
func (i *Ingestor) applyPayload(payload *Payload) (*models.Dataset, error) {
	switch payload.Kind {
	case PayloadCombined:
		scan, vpnLog, contacts, err := i.normalizer.NormalizeCombined(payload.Combined)
		if err != nil {
			return nil, err
		}
		return i.store.Replace(scan, vpnLog, i.contactsOr(contacts)), nil

	case PayloadScan, PayloadRawApps:
		scan := i.normalizeScanPayload(payload)
		prior := i.store.Snapshot()
		return i.store.Replace(scan, prior.VpnLog, i.contactsOr(prior.Contacts)), nil

	default:
		return nil, &FormatError{Message: "unrecognized payload shape"}
	}
}

func (i *Ingestor) normalizeScanPayload(payload *Payload) *models.ScanResult {
	switch payload.Kind {
	case PayloadScan:
		return i.normalizer.NormalizeScan(payload.Scan)
	case PayloadRawApps:
		return i.normalizer.NormalizeRawApps(payload.RawApps)
	default:
		return nil
	}
}

func (i *Ingestor) replaceLog(entries []models.NetworkLogEntry) *models.Dataset {
	prior := i.store.Snapshot()
	return i.store.Replace(prior.ScanResult, entries, i.contactsOr(prior.Contacts))
}

func (i *Ingestor) replaceContacts(contacts []models.Contact) *models.Dataset {
	prior := i.store.Snapshot()
	return i.store.Replace(prior.ScanResult, prior.VpnLog, i.contactsOr(contacts))
}

// contactsOr falls back to the bundled placeholder set when a load produced
// no contact data.
func (i *Ingestor) contactsOr(contacts []models.Contact) []models.Contact {
	if len(contacts) == 0 {
		return i.placeholder
	}
	return contacts
}

// fetchJSON performs one GET and returns the body when it is valid JSON.
// Everything else maps to a FetchError.
func (i *Ingestor) fetchJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, i.maxBody))
	if err != nil {
		return nil, &FetchError{URL: url, Message: err.Error()}
	}
	if !json.Valid(body) {
		return nil, &FetchError{URL: url, Message: "response body is not valid JSON"}
	}

	return body, nil
}
