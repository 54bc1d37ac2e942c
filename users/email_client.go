package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// EmailClient is the real Notifier implementation. It talks to an email
// service over HTTP: POST {base}/send to send a message, GET {base}/count/{id}
// to query how many emails a user has received.
type EmailClient struct {
	baseURL    string
	httpClient *http.Client
}

type sendEmailParams struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type emailCountResponse struct {
	Count ldvalue.OptionalInt `json:"count"`
}

// NewEmailClient creates an EmailClient for the service at baseURL.
func NewEmailClient(baseURL string) *EmailClient {
	return &EmailClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SendEmail posts the message to the email service. A non-2xx status means
// the service rejected the message; that is not an error, just a false result.
func (c *EmailClient) SendEmail(to, subject, body string) (bool, error) {
	data, err := json.Marshal(sendEmailParams{To: to, Subject: subject, Body: body})
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Post(c.baseURL+"/send", "application/json", bytes.NewBuffer(data))
	if err != nil {
		return false, err
	}
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
	return resp.StatusCode == 200, nil
}

// EmailCount queries the email count for a user. A response without a count
// field is treated as zero.
func (c *EmailClient) EmailCount(userID int) (int, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/count/%d", c.baseURL, userID))
	if err != nil {
		return 0, err
	}
	respData, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	var countResp emailCountResponse
	if err := json.Unmarshal(respData, &countResp); err != nil {
		return 0, fmt.Errorf("malformed count response from email service: %s", string(respData))
	}
	return countResp.Count.OrElse(0), nil
}
