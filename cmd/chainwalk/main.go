// chainwalk is a terminal client for the offer chain. It resolves a lead
// against a running offerchain server, loads the active offers and steps
// through them one at a time, recording views, declines and submits in
// the ledger exactly as the web client does.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"offerchain/internal/chain"
	"offerchain/internal/core/domain"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the offerchain server")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := &apiClient{
		base: strings.TrimRight(*addr, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}

	ctx := context.Background()

	leadID, isNew, err := client.resolveLead(ctx)
	if err != nil {
		logger.Error("failed to resolve lead", slog.Any("error", err))
		os.Exit(1)
	}
	if isNew {
		fmt.Printf("welcome, new lead %s\n", leadID)
	} else {
		fmt.Printf("welcome back, lead %s\n", leadID)
	}

	offers, err := client.activeOffers(ctx)
	if err != nil {
		logger.Error("failed to load offers", slog.Any("error", err))
		os.Exit(1)
	}

	walk := chain.New(client, logger)
	walk.Start(ctx, leadID, offers)
	if walk.State() == chain.StateExhausted {
		fmt.Println("no active offers right now, check back later")
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for walk.State() == chain.StateReady {
		offer, step := walk.Current()
		fmt.Printf("\n[%d/%d] %s\n", step, len(offers), offer.Title)
		fmt.Printf("  %s\n", offer.Description)
		fmt.Printf("  %s\n", offer.SavingsText)
		fmt.Print("(a)ccept, (d)ecline or (q)uit? ")

		if !scanner.Scan() {
			return
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "a", "accept":
			url := walk.Accept(ctx)
			fmt.Printf("continue at: %s\n", url)
		case "d", "decline":
			walk.Decline(ctx)
		case "q", "quit":
			return
		default:
			fmt.Println("please answer a, d or q")
		}
	}
}

// envelope is the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type apiClient struct {
	base string
	http *http.Client
}

// call issues one JSON request and decodes the envelope, returning the
// raw data payload on success.
func (c *apiClient) call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%s %s: %s", method, path, env.Error)
	}
	return env.Data, nil
}

// resolveLead asks the server to identify this client by fingerprint,
// creating the lead on first contact.
func (c *apiClient) resolveLead(ctx context.Context) (string, bool, error) {
	data, err := c.call(ctx, http.MethodPost, "/api/leads", nil)
	if err != nil {
		return "", false, err
	}
	var payload struct {
		LeadID    string `json:"leadId"`
		IsNewLead bool   `json:"isNewLead"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", false, err
	}
	return payload.LeadID, payload.IsNewLead, nil
}

// activeOffers fetches the public, position-ordered offer list.
func (c *apiClient) activeOffers(ctx context.Context) ([]domain.Offer, error) {
	data, err := c.call(ctx, http.MethodGet, "/api/offers", nil)
	if err != nil {
		return nil, err
	}
	var payload []struct {
		OfferID      string `json:"offerId"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		SavingsText  string `json:"savingsText"`
		AffiliateURL string `json:"affiliateUrl"`
		Position     int    `json:"position"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(payload))
	for _, p := range payload {
		offers = append(offers, domain.Offer{
			ID:           p.OfferID,
			Title:        p.Title,
			Description:  p.Description,
			SavingsText:  p.SavingsText,
			AffiliateURL: p.AffiliateURL,
			Position:     p.Position,
		})
	}
	return offers, nil
}

// Emit posts a walk event to the action ledger.
func (c *apiClient) Emit(ctx context.Context, ev chain.Event) error {
	_, err := c.call(ctx, http.MethodPost, "/api/actions", map[string]any{
		"leadId":        ev.LeadID,
		"actionType":    string(ev.Type),
		"sessionId":     ev.SessionID,
		"offerId":       ev.OfferID,
		"offerPosition": ev.Step,
		"metadata":      ev.Metadata,
	})
	return err
}
