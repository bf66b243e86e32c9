package message

// Metadata is the flat key/value payload attached to a notification.
type Metadata map[string]Value

// Strings renders every value to its string form.
func (m Metadata) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}

// With returns a copy of m with key set to value.
func (m Metadata) With(key string, value Value) Metadata {
	out := make(Metadata, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[key] = value
	return out
}

// MetadataFromMap builds Metadata from decoded JSON.
func MetadataFromMap(raw map[string]any) Metadata {
	out := make(Metadata, len(raw))
	for k, v := range raw {
		out[k] = FromAny(v)
	}
	return out
}

// Content is a notification that has not been addressed yet.
type Content struct {
	Title    string
	Body     string
	Metadata Metadata
}

func (c Content) To(destination string) Request {
	return Request{
		Destination: destination,
		Title:       c.Title,
		Body:        c.Body,
		Metadata:    c.Metadata,
	}
}

// Request is a single notification addressed to one device token.
type Request struct {
	Destination string
	Title       string
	Body        string
	Metadata    Metadata
}
