package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// defaultSearchCount is the number of results a search returns without -n.
const defaultSearchCount = 8

var (
	searchCount int
	searchJSON  bool
)

// Filter flags, one set per kind.
var (
	bookFullView bool
	bookLibrary  string

	newsSort     string
	newsEdition  string
	newsTopic    string
	newsLocation string

	videoSort string

	webSafe string
	webLang string
	webSite string

	imageSafe     string
	imageSize     string
	imageColor    string
	imageType     string
	imageFileType string
	imageSite     string

	localCenter     string
	localResultType string

	patentSort   string
	patentStatus string
)

// searchRunner runs one kind of search and returns its results as items.
type searchRunner func(cmd *cobra.Command, keyword string) ([]domain.Item, error)

var bookCmd = newSearchCmd(domain.KindBook, "Search Google Book Search",
	`Search Google Book Search for volumes matching the keywords.

Set backend.book = "books" to use the Books API instead of the AJAX endpoint.`,
	runBookSearch)

var newsCmd = newSearchCmd(domain.KindNews, "Search Google News",
	`Search Google News for stories matching the keywords.

Stories can be sorted by date and narrowed to an edition, topic or location.`,
	runNewsSearch)

var videoCmd = newSearchCmd(domain.KindVideo, "Search Google Video",
	`Search Google Video for videos matching the keywords.`,
	runVideoSearch)

var webCmd = newSearchCmd(domain.KindWeb, "Search the web",
	`Search Google Web Search for pages matching the keywords.`,
	runWebSearch)

var imageCmd = newSearchCmd(domain.KindImage, "Search Google Images",
	`Search Google Image Search for images matching the keywords.

Images can be filtered by size, colour, type, file type and site.`,
	runImageSearch)

var localCmd = newSearchCmd(domain.KindLocal, "Search Google Local",
	`Search Google Local Search for places matching the keywords.

Use --center "lat,lng" to bias results towards a point.`,
	runLocalSearch)

var patentCmd = newSearchCmd(domain.KindPatent, "Search Google Patents",
	`Search Google Patent Search for patents matching the keywords.`,
	runPatentSearch)

func newSearchCmd(kind domain.Kind, short, long string, run searchRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String() + " [keywords]",
		Short: short,
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, kind, strings.Join(args, " "), run)
		},
	}
	cmd.Flags().IntVarP(&searchCount, "count", "n", defaultSearchCount, "number of results to return")
	cmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	return cmd
}

func init() {
	bookCmd.Flags().BoolVar(&bookFullView, "full-view", false, "only books with a full view")
	bookCmd.Flags().StringVar(&bookLibrary, "library", "", "restrict to a user library")

	newsCmd.Flags().StringVar(&newsSort, "sort", "relevance", "sort order: relevance or date")
	newsCmd.Flags().StringVar(&newsEdition, "edition", "", "regional edition (e.g. uk)")
	newsCmd.Flags().StringVar(&newsTopic, "topic", "", "topic code (e.g. h, t)")
	newsCmd.Flags().StringVar(&newsLocation, "location", "", "stories about a place")

	videoCmd.Flags().StringVar(&videoSort, "sort", "relevance", "sort order: relevance or date")

	webCmd.Flags().StringVar(&webSafe, "safe", "", "safe search: active, moderate or off")
	webCmd.Flags().StringVar(&webLang, "lang", "", "restrict to a language (e.g. lang_en)")
	webCmd.Flags().StringVar(&webSite, "site", "", "restrict to one site")

	imageCmd.Flags().StringVar(&imageSafe, "safe", "", "safe search: active, moderate or off")
	imageCmd.Flags().StringVar(&imageSize, "size", "", "icon, small, medium, large, xlarge, xxlarge or huge")
	imageCmd.Flags().StringVar(&imageColor, "color", "", "mono, gray or color")
	imageCmd.Flags().StringVar(&imageType, "type", "", "face, photo, clipart or lineart")
	imageCmd.Flags().StringVar(&imageFileType, "filetype", "", "jpg, png, gif or bmp")
	imageCmd.Flags().StringVar(&imageSite, "site", "", "restrict to one site")

	localCmd.Flags().StringVar(&localCenter, "center", "", `bias results towards "lat,lng"`)
	localCmd.Flags().StringVar(&localResultType, "result-type", "", "blended, kmlonly or localonly")

	patentCmd.Flags().StringVar(&patentSort, "sort", "relevance", "sort order: relevance or date")
	patentCmd.Flags().StringVar(&patentStatus, "status", "", "issued or filed")

	rootCmd.AddCommand(bookCmd, newsCmd, videoCmd, webCmd, imageCmd, localCmd, patentCmd)
}

func runSearch(cmd *cobra.Command, kind domain.Kind, keyword string, run searchRunner) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	items, err := run(cmd, keyword)
	if err != nil {
		return fmt.Errorf("%s search failed: %w", kind, err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, items)
	}

	return outputSearchTable(cmd, items)
}

func runBookSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	opts := domain.BookOptions{FullViewOnly: bookFullView, Library: bookLibrary}
	results, err := searchService.Books(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runNewsSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	sortBy, err := parseSortOrder(newsSort)
	if err != nil {
		return nil, err
	}
	opts := domain.NewsOptions{SortBy: sortBy, Edition: newsEdition, Topic: newsTopic, Location: newsLocation}
	results, err := searchService.News(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runVideoSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	sortBy, err := parseSortOrder(videoSort)
	if err != nil {
		return nil, err
	}
	results, err := searchService.Videos(cmd.Context(), keyword, searchCount, domain.VideoOptions{SortBy: sortBy})
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runWebSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	safe, err := parseSafeLevel(webSafe)
	if err != nil {
		return nil, err
	}
	opts := domain.WebOptions{SafeSearch: safe, Language: webLang, Site: webSite}
	results, err := searchService.Web(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runImageSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	safe, err := parseSafeLevel(imageSafe)
	if err != nil {
		return nil, err
	}
	opts := domain.ImageOptions{
		SafeSearch: safe,
		Size:       imageSize,
		Color:      imageColor,
		Type:       imageType,
		FileType:   imageFileType,
		Site:       imageSite,
	}
	results, err := searchService.Images(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runLocalSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	opts := domain.LocalOptions{Center: localCenter, ResultType: localResultType}
	results, err := searchService.Local(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

func runPatentSearch(cmd *cobra.Command, keyword string) ([]domain.Item, error) {
	sortBy, err := parseSortOrder(patentSort)
	if err != nil {
		return nil, err
	}
	status := domain.PatentStatus(strings.ToLower(patentStatus))
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown patent status %q", domain.ErrInvalidArgument, patentStatus)
	}
	opts := domain.PatentOptions{SortBy: sortBy, Status: status}
	results, err := searchService.Patents(cmd.Context(), keyword, searchCount, opts)
	if err != nil {
		return nil, err
	}
	return domain.ItemsOf(results), nil
}

// parseSortOrder maps the --sort flag to a sort order. "relevance" and
// the empty string both select the service default.
func parseSortOrder(s string) (domain.SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "relevance":
		return domain.SortByRelevance, nil
	case "date":
		return domain.SortByDate, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", domain.ErrInvalidArgument, s)
	}
}

func parseSafeLevel(s string) (domain.SafeLevel, error) {
	level := domain.SafeLevel(strings.ToLower(s))
	if !level.IsValid() {
		return "", fmt.Errorf("%w: unknown safe search level %q", domain.ErrInvalidArgument, s)
	}
	return level, nil
}

func outputSearchJSON(cmd *cobra.Command, items []domain.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, items []domain.Item) error {
	if len(items) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, item := range items {
		title := item.Title()
		if title == "" {
			title = item.ID()
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		if item.URL() != "" {
			cmd.Printf("      %s\n", item.URL())
		}
		if summary := domain.Summary(item); summary != "" {
			cmd.Printf("      %s\n", summary)
		}
		cmd.Println()
	}

	return nil
}
