package bot

import (
	"strconv"
	"strings"
)

// Family enumerates the closed set of action families carried by
// interaction tokens. Parameterized families carry one base-10 integer
// argument (job id, employee id, page number or photo index).
type Family int

const (
	FamUnknown Family = iota

	// exact tokens
	FamHome
	FamDevHome
	FamDirectorHome
	FamEmployeeHome
	FamAssignmentList
	FamEmployeeChoiceList
	FamMyJobs
	FamAssignSelected
	FamNoop

	// parameterized tokens
	FamToggleJob
	FamPage
	FamAssignTo
	FamViewCompleted
	FamViewJob
	FamJobMenu
	FamStartJob
	FamFinishJob
	FamUploadPhoto
	FamFinishUpload
	FamSiteInfo
	FamMapLink
	FamViewPhotosGrid
	FamPhotoGridNav
	FamViewPhotos
	FamPhotoNav
	FamAddNote
	FamCancelNote
	FamRefreshWeather
)

// Action is one decoded interaction token. Tokens are decoded exactly once
// at the boundary; handlers never re-parse strings.
type Action struct {
	Family Family
	Arg    int64
}

var exactTokens = map[string]Family{
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

// prefixTokens is ordered: longer prefixes that shadow shorter ones come
// first (view_photos_grid_ before view_photos_).
var prefixTokens = []struct {
	prefix string
	family Family
}{
	{"toggle_job_", FamToggleJob},
	{"page_", FamPage},
	{"assign_to_", FamAssignTo},
	{"view_completed_jobs_", FamViewCompleted},
	{"view_job_", FamViewJob},
	{"job_menu_", FamJobMenu},
	{"start_job_", FamStartJob},
	{"finish_job_", FamFinishJob},
	{"upload_photo_", FamUploadPhoto},
	{"finish_upload_", FamFinishUpload},
	{"site_info_", FamSiteInfo},
	{"map_link_", FamMapLink},
	{"view_photos_grid_", FamViewPhotosGrid},
	{"photo_grid_", FamPhotoGridNav},
	{"view_photos_", FamViewPhotos},
	{"photo_nav_", FamPhotoNav},
	{"add_note_", FamAddNote},
	{"cancel_note_", FamCancelNote},
	{"refresh_weather_", FamRefreshWeather},
}

// ParseToken decodes an interaction token. The second return is false for
// anything outside the vocabulary; the caller renders an "unsupported
// action" screen, never a fault.
func ParseToken(data string) (Action, bool) {
	if fam, ok := exactTokens[data]; ok {
		return Action{Family: fam}, true
	}
	for _, p := range prefixTokens {
		if !strings.HasPrefix(data, p.prefix) {
			continue
		}
		arg, err := strconv.ParseInt(data[len(p.prefix):], 10, 64)
		if err != nil {
			return Action{}, false
		}
		return Action{Family: p.family, Arg: arg}, true
	}
	return Action{}, false
}

var familyTokens = func() map[Family]string {
	out := make(map[Family]string, len(exactTokens))
	for tok, fam := range exactTokens {
		out[fam] = tok
	}
	return out
}()

// Token encodes an action back to its wire string for button callbacks.
func (a Action) Token() string {
	if s, ok := familyTokens[a.Family]; ok {
		return s
	}
	for _, p := range prefixTokens {
		if p.family == a.Family {
			return p.prefix + strconv.FormatInt(a.Arg, 10)
		}
	}
	return "noop"
}

// tok is shorthand for building button callback tokens.
func tok(f Family, arg int64) string {
	return Action{Family: f, Arg: arg}.Token()
}

func tok0(f Family) string {
	return Action{Family: f}.Token()
}
