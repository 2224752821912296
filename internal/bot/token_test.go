package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenExact(t *testing.T) {
	cases := map[string]Family{
		"start":                  FamHome,
		"dev_dashboard":          FamDevHome,
		"director_dashboard":     FamDirectorHome,
		"emp_employee_dashboard": FamEmployeeHome,
		"dir_assign_jobs_list":   FamAssignmentList,
		"calendar_view":          FamEmployeeChoiceList,
		"emp_view_jobs":          FamMyJobs,
		"assign_selected_jobs":   FamAssignSelected,
		"noop":                   FamNoop,
	}
	for token, want := range cases {
		a, ok := ParseToken(token)
		require.True(t, ok, token)
		assert.Equal(t, want, a.Family, token)
		assert.Zero(t, a.Arg, token)
	}
}

func TestParseTokenParameterized(t *testing.T) {
	cases := map[string]Action{
		"toggle_job_12":           {Family: FamToggleJob, Arg: 12},
		"page_3":                  {Family: FamPage, Arg: 3},
		"assign_to_1672989849":    {Family: FamAssignTo, Arg: 1672989849},
		"view_completed_jobs_9":   {Family: FamViewCompleted, Arg: 9},
		"view_job_4":              {Family: FamViewJob, Arg: 4},
		"job_menu_8":              {Family: FamJobMenu, Arg: 8},
		"start_job_8":             {Family: FamStartJob, Arg: 8},
		"finish_job_8":            {Family: FamFinishJob, Arg: 8},
		"upload_photo_8":          {Family: FamUploadPhoto, Arg: 8},
		"finish_upload_8":         {Family: FamFinishUpload, Arg: 8},
		"site_info_8":             {Family: FamSiteInfo, Arg: 8},
		"map_link_8":              {Family: FamMapLink, Arg: 8},
		"view_photos_grid_8":      {Family: FamViewPhotosGrid, Arg: 8},
		"photo_grid_2":            {Family: FamPhotoGridNav, Arg: 2},
		"view_photos_8":           {Family: FamViewPhotos, Arg: 8},
		"photo_nav_5":             {Family: FamPhotoNav, Arg: 5},
		"add_note_8":              {Family: FamAddNote, Arg: 8},
		"cancel_note_8":           {Family: FamCancelNote, Arg: 8},
		"refresh_weather_8":       {Family: FamRefreshWeather, Arg: 8},
	}
	for token, want := range cases {
		a, ok := ParseToken(token)
		require.True(t, ok, token)
		assert.Equal(t, want, a, token)
	}
}

// view_photos_grid_ shadows view_photos_; the longer prefix must win.
func TestParseTokenPrefixShadowing(t *testing.T) {
	a, ok := ParseToken("view_photos_grid_7")
	require.True(t, ok)
	assert.Equal(t, FamViewPhotosGrid, a.Family)

	a, ok = ParseToken("view_photos_7")
	require.True(t, ok)
	assert.Equal(t, FamViewPhotos, a.Family)
}

func TestParseTokenRejectsOutsideVocabulary(t *testing.T) {
	for _, token := range []string{
		"",
		"bogus",
		"toggle_job_",
		"toggle_job_abc",
		"page_1extra",
		"START",
	} {
		_, ok := ParseToken(token)
		assert.False(t, ok, token)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	actions := []Action{
		{Family: FamHome},
		{Family: FamNoop},
		{Family: FamToggleJob, Arg: 99},
		{Family: FamAssignTo, Arg: 1672989849},
		{Family: FamViewPhotosGrid, Arg: 3},
		{Family: FamPhotoNav, Arg: 0},
	}
	for _, a := range actions {
		got, ok := ParseToken(a.Token())
		require.True(t, ok, a.Token())
		assert.Equal(t, a, got)
	}
}
