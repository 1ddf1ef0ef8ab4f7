package telnyx

type sendMessageRequest struct {
	From               string `json:"from"`
	To                 string `json:"to"`
	Text               string `json:"text"`
	MessagingProfileID string `json:"messaging_profile_id"`
	Type               string `json:"type"`
	UseProfileWebhooks bool   `json:"use_profile_webhooks"`
}

type sendMessageResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
