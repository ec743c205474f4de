package pageurl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var displayURLs = []string{
	"http://buic-confluence.conti.de:8090/display/~uidj5418/Page+1",
	"http://buic-confluence.conti.de:8090/display/SWPT/Gerrit+Sandbox",
	"http://buic-confluence:8090/display/AHU/FordAHU_1.00.05",
	"http://buic-confluence.conti.de:8090/display/TS/Automated+Release",
	"http://wiki-id.conti.de/display/CIPS/CIPS+V02.01.00",
	"http://buic-confluence.conti.de:8090/display/DFSSN/DFSS+Network",
	"http://buic-confluence.conti.de:8090/display/IIC/I+IC",
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://h:8090", true},
		{"https://h", true},
		{"http://buic-confluence.conti.de:8090/pages/viewpage.action?pageId=102948555", true},
		{"https://buic-jenkins-dpk-1.contiwan.com/job/pipeline_cm_ci/", true},
		{"not a url", false},
		{"ftp://h:21/file", false},
		{"./templates/page.html", false},
		{" http://h", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsURL(tt.in), "IsURL(%q)", tt.in)
	}
}

func TestHasPageID(t *testing.T) {
	assert.True(t, HasPageID("http://buic-confluence.conti.de:8090/pages/viewpage.action?pageId=102948555"))
	assert.True(t, HasPageID("http://wiki-id.conti.de/pages/viewpage.action?pageId=206572381"))
	assert.False(t, HasPageID("http://h/pages/viewpage.action?pageId=123&src=x"))
	assert.False(t, HasPageID("http://h/pages/viewpage.action?pageId="))
	for _, u := range displayURLs {
		assert.False(t, HasPageID(u), u)
	}
}

func TestPageID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://h:8090/pages/viewpage.action?pageId=123", "123"},
		{"http://buic-confluence.conti.de:8090/pages/viewpage.action?pageId=102948555", "102948555"},
		{"http://wiki-id.conti.de/pages/viewpage.action?pageId=206572381", "206572381"},
		{"http://h/pages/viewpage.action?pageId=007", "007"},
	}
	for _, tt := range tests {
		got, err := PageID(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPageIDNotFound(t *testing.T) {
	bad := append([]string{
		"http://buic-confluence.conti.de:8090",
		"https://buic-jenkins-dpk-1.contiwan.com/job/pipeline_cm_ci/",
		"http://buic-confluence.conti.de:8090/display/",
		"http://h/pages/viewpage.action?pageId=123&src=x",
		"pageId=123",
	}, displayURLs...)

	for _, u := range bad {
		_, err := PageID(u)
		require.Error(t, err, u)
		assert.ErrorIs(t, err, ErrPageIDNotFound, u)

		var ue *Error
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, u, ue.URL)
	}
}

func TestSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://h:8090/display/IIC/I+IC", "IIC"},
		{"http://buic-confluence.conti.de:8090/display/~uidj5418/Page+1", "~uidj5418"},
		{"http://buic-confluence:8090/display/AHU/FordAHU_1.00.05", "AHU"},
		{"http://h/display/MY-SPACE/a/b/c", "MY-SPACE"},
	}
	for _, tt := range tests {
		got, err := Space(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSpaceNotFound(t *testing.T) {
	for _, u := range []string{
		"http://buic-confluence.conti.de:8090",
		"http://buic-confluence.conti.de:8090/pages/viewpage.action?pageId=102948555",
		"https://buic-jenkins-dpk-1.contiwan.com/job/pipeline_cm_ci/",
		"http://h/display/NOSLASH",
		"/display/IIC/I+IC",
	} {
		_, err := Space(u)
		assert.ErrorIs(t, err, ErrSpaceNotFound, u)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in        string
		formatted string
		raw       string
	}{
		{"http://h:8090/display/IIC/I+IC", "I IC", "I+IC"},
		{"http://buic-confluence.conti.de:8090/display/~uidj5418/Page+1", "Page 1", "Page+1"},
		{"http://buic-confluence.conti.de:8090/display/~uidj5418/90+-+Git", "90 - Git", "90+-+Git"},
		{"http://buic-confluence:8090/display/AHU/FordAHU_1.00.05", "FordAHU_1.00.05", "FordAHU_1.00.05"},
		{"http://buic-confluence:8090/display/AHU/Quality+Assurance", "Quality Assurance", "Quality+Assurance"},
		{"http://buic-confluence.conti.de:8090/display/SWPT/Jira+Lib", "Jira Lib", "Jira+Lib"},
		{"http://h/display/S/a/b+c", "a/b c", "a/b+c"},
		{"http://h/display/S/", "", ""},
	}
	for _, tt := range tests {
		got, err := Title(tt.in, true)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.formatted, got, tt.in)

		got, err = Title(tt.in, false)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.raw, got, tt.in)
	}
}

func TestTitleNotFound(t *testing.T) {
	for _, u := range []string{
		"http://buic-confluence.conti.de:8090",
		"https://buic-jenkins-dpk-1.contiwan.com/job/pipeline_cm_ci/",
		"http://buic-confluence.conti.de:8090/pages/viewpage.action?pageId=102948555",
		"not a url",
	} {
		_, err := Title(u, true)
		assert.ErrorIs(t, err, ErrTitleNotFound, u)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("http://h:8090/pages/viewpage.action?pageId=123")
	require.NoError(t, err)
	assert.Equal(t, Parsed{Kind: PageIDURL, ID: "123"}, p)

	p, err = Parse("http://h:8090/display/~user/My+Page")
	require.NoError(t, err)
	assert.Equal(t, SpaceTitleURL, p.Kind)
	assert.Equal(t, "~user", p.Space)
	assert.Equal(t, "My+Page", p.Title)
	assert.Equal(t, "My Page", p.FormattedTitle())

	p, err = Parse("http://h:8090")
	require.NoError(t, err)
	assert.Equal(t, BareHost, p.Kind)

	p, err = Parse("https://jenkins/job/x/")
	require.NoError(t, err)
	assert.Equal(t, BareHost, p.Kind)

	_, err = Parse("not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bare", BareHost.String())
	assert.Equal(t, "page-id", PageIDURL.String())
	assert.Equal(t, "space-title", SpaceTitleURL.String())
}
