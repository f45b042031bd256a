package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multipartMail = "Subject: =?UTF-8?Q?Daily_job_alert:_devops_engineer?=\r\n" +
	"From: alerts@example.com\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/alternative; boundary=\"sep\"\r\n" +
	"\r\n" +
	"--sep\r\n" +
	"Content-Type: text/plain; charset=UTF-8\r\n" +
	"\r\n" +
	"DevOps Engineer at Acme: https://example.com/jobs/1\r\n" +
	"--sep\r\n" +
	"Content-Type: text/html; charset=UTF-8\r\n" +
	"Content-Transfer-Encoding: quoted-printable\r\n" +
	"\r\n" +
	"<html><body><p>DevOps=20Engineer</p></body></html>\r\n" +
	"--sep--\r\n"

func TestParseMessageMultipart(t *testing.T) {
	subject, plain, htmlPart := parseMessage([]byte(multipartMail), "fallback")

	assert.Equal(t, "Daily job alert: devops engineer", subject, "encoded words are decoded")
	assert.Contains(t, plain, "DevOps Engineer at Acme")
	assert.Contains(t, htmlPart, "<p>DevOps Engineer</p>", "quoted-printable is decoded")
}

func TestParseMessageBareHTML(t *testing.T) {
	raw := "Subject: alert\r\nContent-Type: text/html\r\n\r\n<p>SRE role</p>"

	subject, plain, htmlPart := parseMessage([]byte(raw), "")
	assert.Equal(t, "alert", subject)
	assert.Empty(t, plain)
	assert.Contains(t, htmlPart, "SRE role")
}

func TestParseMessageUnparseableFallsBack(t *testing.T) {
	subject, plain, htmlPart := parseMessage([]byte("not a mail at all"), "kept subject")
	assert.Equal(t, "kept subject", subject)
	assert.Empty(t, htmlPart)
	require.NotEmpty(t, plain)
	assert.True(t, strings.Contains(plain, "not a mail"))
}

func TestParseMessageEmpty(t *testing.T) {
	subject, plain, htmlPart := parseMessage(nil, "s")
	assert.Equal(t, "s", subject)
	assert.Empty(t, plain)
	assert.Empty(t, htmlPart)
}
