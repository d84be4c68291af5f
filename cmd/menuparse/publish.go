package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type publishResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	UpdatedBy string `json:"updatedBy"`
	UpdatedAt string `json:"updatedAt"`
	Error     string `json:"error"`
}

func newPublishCmd() *cobra.Command {
	var (
		apiURL string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "publish [menu.xlsx]",
		Short: "Parse a menu workbook and publish it to the menu API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("--token is required")
			}

			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			body, err := json.Marshal(doc)
			if err != nil {
				return err
			}

			resp, err := publish(apiURL, token, body)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s (by %s at %s)\n", resp.Message, resp.UpdatedBy, resp.UpdatedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:3001", "Base URL of the menu API")
	cmd.Flags().StringVar(&token, "token", "", "Admin bearer token (from /api/auth login)")
	return cmd
}

func publish(apiURL, token string, body []byte) (*publishResponse, error) {
	endpoint := strings.TrimSuffix(apiURL, "/") + "/api/menu"

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to publish menu: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out publishResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %s", resp.StatusCode, string(raw))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("publish failed with status %d: %s", resp.StatusCode, out.Error)
	}

	return &out, nil
}
