package dialogue

// Choice is one tappable option: a label shown to the user and the opaque
// payload the transport echoes back when tapped.
type Choice struct {
	Label   string `json:"label"`
	Payload string `json:"payload"`
}

// Attachment is a file sent back through the transport (CSV export).
type Attachment struct {
	Filename string `json:"filename"`
	Caption  string `json:"caption,omitempty"`
	Data     []byte `json:"data"`
}

// Reply is one outbound message: text, optional choices, optional file.
type Reply struct {
	Text       string      `json:"text,omitempty"`
	Choices    []Choice    `json:"choices,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func choiceReply(text string, choices []Choice) Reply {
	return Reply{Text: text, Choices: choices}
}
