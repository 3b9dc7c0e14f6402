package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	// 1. Import a small design system
	fmt.Println("1. Importing Design System...")
	designSystem := map[string]interface{}{
		"name": fmt.Sprintf("smoke-test-%d", time.Now().Unix()),
		"components": []map[string]interface{}{
			{
				"id":                 "c1",
				"name":               "Size=Small",
				"component_set_id":   "set1",
				"semantic_type":      "button",
				"variant_properties": map[string]string{"Size": "Small"},
			},
			{
				"id":                 "c2",
				"name":               "Size=Large",
				"component_set_id":   "set1",
				"semantic_type":      "button",
				"variant_properties": map[string]string{"Size": "Large"},
			},
		},
		"component_sets": map[string]interface{}{
			"set1": map[string]interface{}{
				"id":            "set1",
				"name":          "Button",
				"component_ids": []string{"c1", "c2"},
				"variant_properties": map[string][]string{
					"Size": {"Small", "Large"},
				},
				"semantic_type": "button",
			},
		},
	}

	imported, ok := sendRequest("POST", "/design-systems/import", designSystem)
	if !ok {
		fmt.Println("FAILED: Import design system")
		os.Exit(1)
	}
	dsID, _ := imported["id"].(string)
	if dsID == "" {
		fmt.Println("FAILED: Import response missing id")
		os.Exit(1)
	}
	fmt.Println("PASSED: Import design system")

	// 2. List
	fmt.Println("2. Listing Design Systems...")
	if _, ok := sendRequest("GET", "/design-systems", nil); !ok {
		fmt.Println("FAILED: List design systems")
		os.Exit(1)
	}
	fmt.Println("PASSED: List design systems")

	// 3. Match by exact variant
	fmt.Println("3. Matching Elements...")
	matchPayload := map[string]interface{}{
		"elements": []map[string]string{
			{"type": "button", "variant": "Large"},
		},
	}
	matched, ok := sendRequest("POST", "/design-systems/"+dsID+"/match", matchPayload)
	if !ok {
		fmt.Println("FAILED: Match elements")
		os.Exit(1)
	}
	results, _ := matched["results"].([]interface{})
	if len(results) != 1 {
		fmt.Println("FAILED: Expected one match result")
		os.Exit(1)
	}
	fmt.Println("PASSED: Match elements")

	// 4. Export
	fmt.Println("4. Exporting Design System...")
	if _, ok := sendRequest("GET", "/design-systems/"+dsID+"/export", nil); !ok {
		fmt.Println("FAILED: Export design system")
		os.Exit(1)
	}
	fmt.Println("PASSED: Export design system")

	// 5. Delete
	fmt.Println("5. Deleting Design System...")
	if _, ok := sendRequest("DELETE", "/design-systems/"+dsID, nil); !ok {
		fmt.Println("FAILED: Delete design system")
		os.Exit(1)
	}
	fmt.Println("PASSED: Delete design system")
}

func sendRequest(method, endpoint string, payload interface{}) (map[string]interface{}, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))

	var parsed map[string]interface{}
	_ = json.Unmarshal(respBody, &parsed)
	return parsed, true
}
