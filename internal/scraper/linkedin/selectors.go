package linkedin

// Class names on LinkedIn's public (logged-out) job pages.
const (
	resultsListClass     = "jobs-search__results-list"
	fullCardLinkClass    = "base-card__full-link"
	jobCountClass        = "results-context-header__job-count"
	newJobsClass         = "results-context-header__new-jobs"
	titleClass           = "top-card-layout__title"
	flavorClass          = "topcard__flavor"
	flavorBulletClass    = "topcard__flavor--bullet"
	descriptionClass     = "show-more-less-html__markup"
	ShowMoreButtonClass  = "infinite-scroller__show-more-button--visible"
	hiringContactClasses = "base-main-card__title font-sans text-[18px] font-bold text-color-text overflow-hidden"
)

// ResultsPerPage is how many cards one scroll iteration loads.
const ResultsPerPage = 25
