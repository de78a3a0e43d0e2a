package catalog

import "github.com/sokinpui/lintref/model"

// Build returns the catalog of manual lint fixes for the front-end sources.
// Each call assembles a fresh value.
func Build() *Catalog {
	return newCatalog([]model.FileEdits{
		{Path: "src/components/CrRecentlyPlayed.tsx", Edits: []model.Edit{
			{Line: 138, Old: "(_item, _index) =>", New: "(_item, _) =>"},
		}},
		{Path: "src/components/HeroCarousel.tsx", Edits: []model.Edit{
			{Line: 69, Old: "(slide, _index) =>", New: "(slide, _) =>"},
			{Line: 136, Old: "(_, _index) => (", New: "() => ("},
		}},
		{Path: "src/components/LoginRequiredModal.tsx", Edits: []model.Edit{
			{
				Line: 46,
				Old:  "const validateEmail = (email: string): boolean => {",
				New:  "// Email validation disabled for now\n  // const validateEmail = (email: string): boolean => {",
			},
		}},
		{Path: "src/hooks/useLoginRequired.ts", Edits: []model.Edit{
			{Line: 18, Old: "(email, password) =>", New: "(email, _password) =>"},
			{Line: 34, Old: "(email, password) =>", New: "(email, _password) =>"},
		}},
		{Path: "src/pages/AboutPage.tsx", Edits: []model.Edit{
			{Line: 10, Old: "const [announcements,", New: "const [/* announcements */,"},
		}},
		{Path: "src/pages/AccountSettings.tsx", Edits: []model.Edit{
			{Line: 198, Old: "(_event, _checked) =>", New: "(_event, _) =>"},
			{Line: 276, Old: "(email, _password) =>", New: "(email, _) =>"},
			{Line: 287, Old: "(email, _password) =>", New: "(email, _) =>"},
		}},
		{Path: "src/pages/ArticleDetailPage.tsx", Edits: []model.Edit{
			{Line: 13, Old: "const { id } =", New: "const { id: _ } ="},
		}},
		{Path: "src/pages/BecomeVolunteerPage.tsx", Edits: []model.Edit{
			{Line: 7, Old: "import CrButton from", New: "// import CrButton from"},
		}},
		{Path: "src/pages/DJDetailPage.tsx", Edits: []model.Edit{
			{Line: 11, Old: "import CrChip from", New: "// import CrChip from"},
		}},
		{Path: "src/pages/DJSchedulePage.tsx", Edits: []model.Edit{
			{
				Line: 8,
				Old:  "import { useArticles, useEvents, useCurrentUser, useDJs } from",
				New:  "import { useArticles, useEvents, useDJs } from",
			},
		}},
		{Path: "src/pages/EventDetailPage.tsx", Edits: []model.Edit{
			{Line: 16, Old: "const { id } =", New: "const { id: _ } ="},
		}},
		{Path: "src/pages/ForbiddenPage.tsx", Edits: []model.Edit{
			{Line: 6, Old: "import CrPageHeader from", New: "// import CrPageHeader from"},
		}},
		{Path: "src/pages/LeadershipDirectoryPage.tsx", Edits: []model.Edit{
			{Line: 4, Old: "import CrBreadcrumb from", New: "// import CrBreadcrumb from"},
			{Line: 32, Old: "const breadcrumbItems =", New: "// const breadcrumbItems ="},
		}},
		{Path: "src/pages/ListenPage.tsx", Edits: []model.Edit{
			{Line: 7, Old: "import CrPlaylistItem from", New: "// import CrPlaylistItem from"},
			{Line: 81, Old: "(track, index) =>", New: "(track, _) =>"},
			{Line: 151, Old: "const weeksAddsTracks =", New: "// const weeksAddsTracks ="},
			{Line: 448, Old: "const collectionTracks =", New: "// const collectionTracks ="},
		}},
		{Path: "src/pages/MakeRequest.tsx", Edits: []model.Edit{
			{Line: 44, Old: "(email, _password) =>", New: "(email, _) =>"},
			{Line: 54, Old: "(email, _password) =>", New: "(email, _) =>"},
		}},
		{Path: "src/pages/NotFoundPage.tsx", Edits: []model.Edit{
			{Line: 14, Old: "import CrPageHeader from", New: "// import CrPageHeader from"},
		}},
		{Path: "src/pages/OtherWaysToGivePage.tsx", Edits: []model.Edit{
			{Line: 5, Old: "import CrBreadcrumb from", New: "// import CrBreadcrumb from"},
		}},
		{Path: "src/pages/OtherWaysToListenPage.tsx", Edits: []model.Edit{
			{Line: 5, Old: "import CrBreadcrumb from", New: "// import CrBreadcrumb from"},
		}},
		{Path: "src/pages/PlaylistPage.tsx", Edits: []model.Edit{
			{Line: 17, Old: "const [currentShow,", New: "const [/* currentShow */,"},
			{Line: 96, Old: "map((_, index) =>", New: "map((_, _index) =>"},
		}},
		{Path: "src/pages/PodcastDetailPage.tsx", Edits: []model.Edit{
			{Line: 14, Old: "const { id } =", New: "const { id: _ } ="},
		}},
		{Path: "src/pages/RecentlyPlayed.tsx", Edits: []model.Edit{
			{Line: 13, Old: "const samplePlaylistItems =", New: "// const samplePlaylistItems ="},
			{Line: 201, Old: "(track, index) =>", New: "(track, _) =>"},
			{Line: 241, Old: "(email, _password) =>", New: "(email, _) =>"},
			{Line: 251, Old: "(email, _password) =>", New: "(email, _) =>"},
		}},
		{Path: "src/pages/RequestSongPage.tsx", Edits: []model.Edit{
			{Line: 4, Old: "import CrPageHeader from", New: "// import CrPageHeader from"},
		}},
		{Path: "src/pages/ServerErrorPage.tsx", Edits: []model.Edit{
			{Line: 6, Old: "import CrPageHeader from", New: "// import CrPageHeader from"},
		}},
		{Path: "src/pages/SitemapPage.tsx", Edits: []model.Edit{
			{Line: 96, Old: "map((_, _index) =>", New: "map(() =>"},
		}},
		{Path: "src/pages/VolunteerDirectoryPage.tsx", Edits: []model.Edit{
			{Line: 4, Old: "import CrBreadcrumb from", New: "// import CrBreadcrumb from"},
			{Line: 32, Old: "const breadcrumbItems =", New: "// const breadcrumbItems ="},
		}},
		{Path: "src/pages/YourCollection.tsx", Edits: []model.Edit{
			{Line: 24, Old: "const sampleCollectionItems =", New: "// const sampleCollectionItems ="},
			{Line: 88, Old: "const { user } =", New: "const { /* user */ } ="},
			{Line: 132, Old: "(track, index) =>", New: "(track, _) =>"},
			{Line: 161, Old: "(email, _password) =>", New: "(email, _) =>"},
			{Line: 171, Old: "(email, _password) =>", New: "(email, _) =>"},
			{Line: 246, Old: "(item, _index) =>", New: "(item, _) =>"},
		}},
	})
}
