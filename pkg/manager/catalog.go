package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/showtrack/pkg/logger"
	"github.com/kasuboski/showtrack/pkg/storage"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/showtrack/pkg/storage/sqlite/schema/gen/table"
	"github.com/kasuboski/showtrack/pkg/tvmaze"
	"github.com/oapi-codegen/nullable"
	"go.uber.org/zap"
)

// SearchResult is a provider search hit normalized for callers
type SearchResult struct {
	ExternalID int32      `json:"externalId"`
	Name       string     `json:"name"`
	Premiered  *time.Time `json:"premiered,omitempty"`
	Status     string     `json:"status"`
	Rating     *float64   `json:"rating,omitempty"`
	ImageURL   *string    `json:"imageUrl,omitempty"`
	Summary    *string    `json:"summary,omitempty"`
	Score      float64    `json:"score"`
	// ShowID is set when the show has already been ingested
	ShowID *int32 `json:"showId,omitempty"`
}

// IngestResult is the stored show after an ingestion along with what changed
type IngestResult struct {
	*storage.ShowDetails
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// SearchShows queries the provider for shows matching query
func (m *ShowManager) SearchShows(ctx context.Context, query string) ([]SearchResult, error) {
	log := logger.FromCtx(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		log.Debug("search shows query is empty")
		return nil, fmt.Errorf("query is empty: %w", ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.FetchTimeout)
	defer cancel()

	res, err := m.tvmaze.SearchShows(ctx, &tvmaze.SearchShowsParams{Q: query})
	if err != nil {
		log.Error("search shows failed request", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	defer res.Body.Close()

	var hits []tvmaze.SearchResult
	if err := decodeResponse(res, &hits); err != nil {
		log.Debug("error parsing search shows result", zap.Error(err))
		return nil, err
	}

	results := make([]SearchResult, 0, len(hits))
	externalIDs := make([]sqlite.Expression, 0, len(hits))
	for _, hit := range hits {
		show, ok := normalizeShow(hit.Show)
		if !ok {
			log.Debugw("skipping malformed search result", "id", hit.Show.ID)
			continue
		}

		results = append(results, SearchResult{
			ExternalID: show.ExternalID,
			Name:       show.Name,
			Premiered:  show.Premiered,
			Status:     show.Status,
			Rating:     show.Rating,
			ImageURL:   show.ImageURL,
			Summary:    show.Summary,
			Score:      hit.Score,
		})
		externalIDs = append(externalIDs, sqlite.Int32(show.ExternalID))
	}

	if len(externalIDs) == 0 {
		return results, nil
	}

	local, err := m.storage.ListShows(ctx, table.Show.ExternalID.IN(externalIDs...))
	if err != nil {
		return nil, storageError("failed to list local shows", err)
	}

	localIDs := make(map[int32]int32, len(local))
	for _, s := range local {
		localIDs[s.ExternalID] = s.ID
	}
	for i := range results {
		if id, ok := localIDs[results[i].ExternalID]; ok {
			results[i].ShowID = &id
		}
	}

	return results, nil
}

// GetShow returns a local show with its episodes
func (m *ShowManager) GetShow(ctx context.Context, showID int64) (*storage.ShowDetails, error) {
	details, err := m.storage.GetShowDetails(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
	if err != nil {
		return nil, storageError(fmt.Sprintf("show %d", showID), err)
	}
	return details, nil
}

// GetShowByExternalID returns a local show by its provider id
func (m *ShowManager) GetShowByExternalID(ctx context.Context, externalID int32) (*storage.ShowDetails, error) {
	details, err := m.storage.GetShowDetails(ctx, table.Show.ExternalID.EQ(sqlite.Int32(externalID)))
	if err != nil {
		return nil, storageError(fmt.Sprintf("show with external id %d", externalID), err)
	}
	return details, nil
}

// IsStale reports whether the show's catalog should be fetched again
func (m *ShowManager) IsStale(show model.Show, now time.Time) bool {
	if show.LastSynced == nil {
		return true
	}
	return now.Sub(*show.LastSynced) > m.config.CatalogStaleAfter
}

// IngestShow fetches a show and its episodes from the provider and stores
// them in a single transaction. Episodes are matched by their provider id so
// renamed, rescheduled and renumbered episodes are updated in place. Local
// episodes missing from the response are kept.
func (m *ShowManager) IngestShow(ctx context.Context, externalID int32) (*IngestResult, error) {
	log := logger.FromCtx(ctx, "external_id", externalID)

	remote, err := m.fetchShow(ctx, externalID)
	if err != nil {
		return nil, err
	}

	show, ok := normalizeShow(*remote)
	if !ok {
		return nil, fmt.Errorf("%w: malformed show %d", ErrCatalogUnavailable, externalID)
	}
	now := m.now()
	show.LastSynced = &now

	episodes := normalizeEpisodes(ctx, *remote)

	result := new(IngestResult)
	err = m.storage.RunInTransaction(ctx, func(ctx context.Context, tx storage.Storage) error {
		showID, err := tx.UpsertShow(ctx, show)
		if err != nil {
			return err
		}

		result.Added, result.Updated, err = upsertEpisodes(ctx, tx, showID, episodes)
		if err != nil {
			return err
		}

		result.ShowDetails, err = tx.GetShowDetails(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
		return err
	})
	if err != nil {
		log.Error("failed to store show", zap.Error(err))
		return nil, storageError("failed to ingest show", err)
	}

	log.Infow("ingested show", "show_id", result.ID, "added", result.Added, "updated", result.Updated)
	return result, nil
}

func (m *ShowManager) fetchShow(ctx context.Context, externalID int32) (*tvmaze.Show, error) {
	log := logger.FromCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, m.config.FetchTimeout)
	defer cancel()

	embed := tvmaze.EmbedEpisodes
	res, err := m.tvmaze.ShowDetails(ctx, int(externalID), &tvmaze.ShowDetailsParams{Embed: &embed})
	if err != nil {
		log.Error("show details failed request", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("show %d not found upstream: %w", externalID, ErrNotFound)
	}

	var show tvmaze.Show
	if err := decodeResponse(res, &show); err != nil {
		log.Debug("error parsing show details", zap.Error(err))
		return nil, err
	}

	return &show, nil
}

// decodeResponse reads a successful provider response into v. Any other
// status or an unreadable body is reported as ErrCatalogUnavailable.
func decodeResponse(res *http.Response, v any) error {
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", ErrCatalogUnavailable, res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	return nil
}

func normalizeShow(remote tvmaze.Show) (model.Show, bool) {
	name := strings.TrimSpace(remote.Name)
	if remote.ID <= 0 || name == "" {
		return model.Show{}, false
	}

	show := model.Show{
		ExternalID: int32(remote.ID),
		Name:       name,
	}

	if status, ok := tvmaze.Value(remote.Status); ok {
		show.Status = status
	}
	show.Premiered = parseDate(remote.Premiered)
	show.Ended = parseDate(remote.Ended)

	if rating, ok := tvmaze.Value(remote.Rating); ok {
		if avg, ok := tvmaze.Value(rating.Average); ok {
			show.Rating = &avg
		}
	}

	if image, ok := tvmaze.Value(remote.Image); ok {
		if url, ok := tvmaze.Value(image.Original); ok && url != "" {
			show.ImageURL = &url
		} else if url, ok := tvmaze.Value(image.Medium); ok && url != "" {
			show.ImageURL = &url
		}
	}

	show.Summary = nonEmpty(remote.Summary)

	return show, true
}

type position struct {
	season int32
	number int32
}

// normalizeEpisodes keeps the well formed episodes of the response. Episodes
// without an id, season or number are dropped, as is any episode repeating an
// id or position already seen.
func normalizeEpisodes(ctx context.Context, remote tvmaze.Show) []model.Episode {
	log := logger.FromCtx(ctx)

	embedded, ok := tvmaze.Value(remote.Embedded)
	if !ok {
		return nil
	}

	seenIDs := make(map[int32]struct{}, len(embedded.Episodes))
	seenPositions := make(map[position]struct{}, len(embedded.Episodes))
	episodes := make([]model.Episode, 0, len(embedded.Episodes))

	for _, e := range embedded.Episodes {
		season, hasSeason := tvmaze.Value(e.Season)
		number, hasNumber := tvmaze.Value(e.Number)
		if e.ID <= 0 || !hasSeason || !hasNumber {
			log.Debugw("skipping malformed episode", "episode_id", e.ID, "season", season, "number", number)
			continue
		}

		id := int32(e.ID)
		pos := position{season: int32(season), number: int32(number)}
		if _, ok := seenIDs[id]; ok {
			log.Debugw("skipping duplicate episode id", "episode_id", e.ID)
			continue
		}
		if _, ok := seenPositions[pos]; ok {
			log.Debugw("skipping duplicate episode position", "episode_id", e.ID, "season", season, "number", number)
			continue
		}
		seenIDs[id] = struct{}{}
		seenPositions[pos] = struct{}{}

		episode := model.Episode{
			ExternalID: id,
			Season:     pos.season,
			Number:     pos.number,
			Name:       strings.TrimSpace(e.Name),
			AirDate:    parseAirDate(e),
			Summary:    nonEmpty(e.Summary),
		}
		if runtime, ok := tvmaze.Value(e.Runtime); ok {
			r := int32(runtime)
			episode.Runtime = &r
		}

		episodes = append(episodes, episode)
	}

	return episodes
}

// upsertEpisodes writes the new and changed episodes of a show. An episode
// moving to a new position, or a local episode whose position is claimed by
// another episode, is first parked at a negative number so the position
// constraint holds while rows are rewritten.
func upsertEpisodes(ctx context.Context, tx storage.Storage, showID int64, incoming []model.Episode) (added, updated int, err error) {
	log := logger.FromCtx(ctx)

	existing, err := tx.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
	if err != nil {
		return 0, 0, err
	}

	byExternalID := make(map[int32]*model.Episode, len(existing))
	byPosition := make(map[position]*model.Episode, len(existing))
	for _, e := range existing {
		byExternalID[e.ExternalID] = e
		byPosition[position{season: e.Season, number: e.Number}] = e
	}

	var creates, updates []model.Episode
	parked := make(map[int32]model.Episode)
	claimed := make(map[position]int32, len(incoming))

	for _, in := range incoming {
		in.ShowID = int32(showID)
		pos := position{season: in.Season, number: in.Number}
		claimed[pos] = in.ExternalID

		current, ok := byExternalID[in.ExternalID]
		if !ok {
			creates = append(creates, in)
			continue
		}

		in.ID = current.ID
		if episodeEqual(*current, in) {
			continue
		}
		updates = append(updates, in)

		if current.Season != in.Season || current.Number != in.Number {
			parked[current.ID] = *current
		}
	}

	for pos, externalID := range claimed {
		occupant, ok := byPosition[pos]
		if !ok || occupant.ExternalID == externalID {
			continue
		}
		if _, moving := parked[occupant.ID]; moving {
			continue
		}
		log.Warnw("displacing episode missing upstream", "episode_id", occupant.ID, "season", pos.season, "number", pos.number)
		parked[occupant.ID] = *occupant
	}

	for _, e := range parked {
		e.Number = -e.ID
		if err := tx.UpdateEpisode(ctx, e); err != nil {
			return 0, 0, fmt.Errorf("failed to park episode %d: %w", e.ID, err)
		}
	}

	for _, e := range updates {
		if err := tx.UpdateEpisode(ctx, e); err != nil {
			return 0, 0, err
		}
	}

	for _, e := range creates {
		if _, err := tx.CreateEpisode(ctx, e); err != nil {
			return 0, 0, err
		}
	}

	return len(creates), len(updates), nil
}

func episodeEqual(a, b model.Episode) bool {
	return a.Season == b.Season &&
		a.Number == b.Number &&
		a.Name == b.Name &&
		timePtrEqual(a.AirDate, b.AirDate) &&
		ptrEqual(a.Runtime, b.Runtime) &&
		ptrEqual(a.Summary, b.Summary)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func parseDate(n nullable.Nullable[string]) *time.Time {
	s, ok := tvmaze.Value(n)
	if !ok || s == "" {
		return nil
	}

	t, err := time.Parse(tvmaze.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseAirDate prefers the exact airstamp and falls back to midnight UTC of the airdate
func parseAirDate(e tvmaze.Episode) *time.Time {
	if stamp, ok := tvmaze.Value(e.Airstamp); ok && stamp != "" {
		t, err := time.Parse(time.RFC3339, stamp)
		if err == nil {
			t = t.UTC()
			return &t
		}
	}

	return parseDate(e.Airdate)
}

func nonEmpty(n nullable.Nullable[string]) *string {
	s, _ := tvmaze.Value(n)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
