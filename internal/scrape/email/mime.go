package email

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// parseMessage pulls the subject and the HTML body part out of raw RFC822
// bytes. Alert cards only exist in the HTML part; the plain part of these
// mails is a link dump, so it is only kept as a fallback snippet source.
func parseMessage(raw []byte, fallbackSubject string) (subject, plain, htmlPart string) {
	subject = fallbackSubject
	if len(raw) == 0 {
		return subject, "", ""
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return subject, string(raw), ""
	}

	if s := strings.TrimSpace(msg.Header.Get("Subject")); s != "" {
		subject = decodeHeader(s)
	}

	body, _ := io.ReadAll(io.LimitReader(msg.Body, 25<<20))
	plain, htmlPart = textParts(msg.Header, body)
	return subject, plain, htmlPart
}

// textParts walks the MIME structure and returns the largest text/plain and
// text/html parts found, transfer-decoded. Nested multiparts recurse.
func textParts(h mail.Header, body []byte) (plain, htmlPart string) {
	ct := h.Get("Content-Type")
	cte := strings.ToLower(strings.TrimSpace(h.Get("Content-Transfer-Encoding")))

	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return string(decodeTransfer(body, cte)), ""
	}
	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return string(decodeTransfer(body, cte)), ""
		}

		mr := multipart.NewReader(bytes.NewReader(body), boundary)
		for {
			p, err := mr.NextPart()
			if err != nil {
				break
			}
			partCTE := strings.ToLower(strings.TrimSpace(p.Header.Get("Content-Transfer-Encoding")))
			pMedia, _, _ := mime.ParseMediaType(p.Header.Get("Content-Type"))
			pMedia = strings.ToLower(pMedia)

			b, _ := io.ReadAll(io.LimitReader(p, 20<<20))
			b = decodeTransfer(b, partCTE)

			if strings.HasPrefix(pMedia, "multipart/") {
				pl, ht := textParts(mail.Header(p.Header), b)
				if len(pl) > len(plain) {
					plain = pl
				}
				if len(ht) > len(htmlPart) {
					htmlPart = ht
				}
				continue
			}

			switch {
			case strings.HasPrefix(pMedia, "text/plain"):
				if len(b) > len(plain) {
					plain = string(b)
				}
			case strings.HasPrefix(pMedia, "text/html"):
				if len(b) > len(htmlPart) {
					htmlPart = string(b)
				}
			}
		}
		return plain, htmlPart
	}

	s := decodeTransfer(body, cte)
	if strings.HasPrefix(mediaType, "text/html") {
		return "", string(s)
	}
	return string(s), ""
}

func decodeTransfer(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	case "quoted-printable":
		dec := quotedprintable.NewReader(bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, 6<<20))
		return out
	default:
		return b
	}
}

func decodeHeader(s string) string {
	dec := new(mime.WordDecoder)
	out, err := dec.DecodeHeader(s)
	if err != nil {
		return s
	}
	return out
}
