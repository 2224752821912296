package bot

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/session"
)

// viewPhotos opens the single-photo viewer on a job's effective date.
func (b *Bot) viewPhotos(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	date := b.ledger.EffectiveDate(j)
	refs := photos.ForDate(j.Photos, date)
	if len(refs) == 0 {
		return b.renderNoPhotos(ctx, st, userID, chatID, j.SiteName, jobID, date)
	}
	st.SetPhotoViewer(jobID, refs, date)
	st.SetPhotoIndex(0)
	return b.renderPhotoAt(ctx, st, userID, chatID, j.SiteName, 0)
}

// photoNav moves the single-photo cursor. The index comes from the tapped
// button and is clamped, so stale buttons cannot walk off the slice.
func (b *Bot) photoNav(ctx context.Context, st *session.State, userID, chatID int64, index int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	jobID, refs, _ := st.PhotoViewer()
	if jobID == 0 || len(refs) == 0 {
		// viewer state lost (restart); rebuild from the store
		return b.viewPhotos(ctx, st, userID, chatID, jobID)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(refs) {
		index = len(refs) - 1
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	st.SetPhotoIndex(index)
	return b.renderPhotoAt(ctx, st, userID, chatID, j.SiteName, index)
}

func (b *Bot) renderPhotoAt(ctx context.Context, st *session.State, userID, chatID int64, siteName string, index int) error {
	jobID, refs, date := st.PhotoViewer()
	caption := fmt.Sprintf("%s — photo %d of %d (%s)", siteName, index+1, len(refs), date)

	var nav []Button
	if index > 0 {
		nav = append(nav, btn("⬅️", tok(FamPhotoNav, int64(index-1))))
	}
	nav = append(nav, btn(fmt.Sprintf("%d/%d", index+1, len(refs)), tok0(FamNoop)))
	if index < len(refs)-1 {
		nav = append(nav, btn("➡️", tok(FamPhotoNav, int64(index+1))))
	}
	kb := [][]Button{
		nav,
		row(btn("🖼️ Grid View", tok(FamViewPhotosGrid, int64(jobID)))),
		row(btn(backPrefix+" Back to Job", tok(b.jobBackFamily(userID), int64(jobID)))),
	}
	return b.renderer.RenderPhoto(ctx, st, chatID, b.content.Path(refs[index]), caption, kb)
}

// viewPhotosGrid shows a job's photos ten at a time as albums.
func (b *Bot) viewPhotosGrid(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	date := b.ledger.EffectiveDate(j)
	refs := photos.ForDate(j.Photos, date)
	if len(refs) == 0 {
		return b.renderNoPhotos(ctx, st, userID, chatID, j.SiteName, jobID, date)
	}
	st.SetPhotoViewer(jobID, refs, date)
	st.SetPhotoPage(0)
	return b.renderGridPage(ctx, st, userID, chatID, j.SiteName, 0)
}

func (b *Bot) photoGridNav(ctx context.Context, st *session.State, userID, chatID int64, page int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	jobID, refs, _ := st.PhotoViewer()
	if jobID == 0 || len(refs) == 0 {
		return b.viewPhotosGrid(ctx, st, userID, chatID, jobID)
	}
	last := (len(refs) - 1) / gridPageSize
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	st.SetPhotoPage(page)
	return b.renderGridPage(ctx, st, userID, chatID, j.SiteName, page)
}

func (b *Bot) renderGridPage(ctx context.Context, st *session.State, userID, chatID int64, siteName string, page int) error {
	jobID, refs, date := st.PhotoViewer()
	start := page * gridPageSize
	end := start + gridPageSize
	if end > len(refs) {
		end = len(refs)
	}
	paths := make([]string, 0, end-start)
	for _, ref := range refs[start:end] {
		paths = append(paths, b.content.Path(ref))
	}
	if err := b.transport.SendAlbum(ctx, chatID, paths); err != nil {
		return err
	}

	last := (len(refs) - 1) / gridPageSize
	var nav []Button
	if page > 0 {
		nav = append(nav, btn("⬅️ Prev", tok(FamPhotoGridNav, int64(page-1))))
	}
	if page < last {
		nav = append(nav, btn("➡️ Next", tok(FamPhotoGridNav, int64(page+1))))
	}
	kb := [][]Button{}
	if len(nav) > 0 {
		kb = append(kb, nav)
	}
	kb = append(kb,
		row(btn("🔍 One at a Time", tok(FamViewPhotos, int64(jobID)))),
		row(btn(backPrefix+" Back to Job", tok(b.jobBackFamily(userID), int64(jobID)))),
	)
	text := fmt.Sprintf("🖼️ %s — photos %d-%d of %d (%s)",
		siteName, start+1, end, len(refs), date)
	// the albums are separate messages; the nav screen replaces the old one
	return b.renderer.RenderNew(ctx, st, chatID, Screen{Text: text, Keyboard: kb})
}

func (b *Bot) renderNoPhotos(ctx context.Context, st *session.State, userID, chatID int64, siteName string, jobID int, date string) error {
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: fmt.Sprintf("🖼️ %s\n%s\nNo photos for %s.", siteName, separator, date),
		Keyboard: [][]Button{
			row(btn(backPrefix+" Back to Job", tok(b.jobBackFamily(userID), int64(jobID)))),
		},
	})
}
