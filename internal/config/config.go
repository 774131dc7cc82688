package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Numerology/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Numerology"
	AppID             = "com.github.tartampluch.go-numerology"
	KeyringService    = "com.github.tartampluch.go-numerology"
	BinaryName        = "go-numerology"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "settings.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and exported documents.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdMap       = "map"
	CmdTimeline  = "timeline"
	CmdCalendar  = "calendar"
	CmdCompat    = "compat"
	CmdEnergy    = "energy"
	CmdVibration = "vibration NAME"
	CmdAddress   = "address TEXT"
	CmdImport    = "import"
	CmdLogin     = "login"
	CmdServe     = "serve"
	CmdVersion   = "version"

	CmdDescRoot      = "Pythagorean numerology maps, timelines and dynamic calendars"
	CmdDescMap       = "Compute the full numerological map of a person"
	CmdDescTimeline  = "Print the year-by-year timeline from birth to age 80"
	CmdDescCalendar  = "Print the quadrimester and trimester micro-cycles"
	CmdDescCompat    = "Compare the numbers of two people"
	CmdDescEnergy    = "Compute the energy schema of a person"
	CmdDescVibration = "Vibration of a pet or stage name"
	CmdDescAddress   = "Vibration of a house number or street"
	CmdDescImport    = "Compute profiles for every contact of an address book"
	CmdDescLogin     = "Store the address-book password in the system keyring"
	CmdDescServe     = "Serve the calendar feed and profiles over HTTP"
	CmdDescVersion   = "Show application version and exit"

	FlagConfig    = "config"
	FlagDebug     = "debug"
	FlagLang      = "lang"
	FlagFirst     = "first"
	FlagLast      = "last"
	FlagBirth     = "birth"
	FlagYear      = "year"
	FlagFormat    = "format"
	FlagOut       = "out"
	FlagCalendar  = "calendar"
	FlagICS       = "ics"
	FlagFirst1    = "first1"
	FlagLast1     = "last1"
	FlagBirth1    = "birth1"
	FlagFirst2    = "first2"
	FlagLast2     = "last2"
	FlagBirth2    = "birth2"
	FlagSource    = "source"
	FlagPath      = "path"
	FlagURL       = "url"
	FlagUser      = "user"
	FlagPort      = "port"
	FlagInterval  = "interval"
	FlagPassStdin = "password-stdin"
	FlagKind      = "kind"

	FlagDescConfig    = "Path to a YAML settings file"
	FlagDescDebug     = "Enable debug logging"
	FlagDescLang      = "Language of labels and interpretations (it, en)"
	FlagDescFirst     = "First name"
	FlagDescLast      = "Last name"
	FlagDescBirth     = "Birth date (DD/MM/YYYY)"
	FlagDescYear      = "Reference year (defaults to the current year)"
	FlagDescFormat    = "Output format: table, json or yaml"
	FlagDescOut       = "Write the output to a file instead of stdout"
	FlagDescCalendar  = "Include the dynamic calendar in the document"
	FlagDescICS       = "Also write the calendar windows to an .ics file"
	FlagDescPerson1   = "Person 1: "
	FlagDescPerson2   = "Person 2: "
	FlagDescSource    = "Address-book source: local or web"
	FlagDescPath      = "Path to a .vcf file"
	FlagDescURL       = "CardDAV/WebDAV URL of the address book"
	FlagDescUser      = "Address-book user name"
	FlagDescPort      = "HTTP port of the feed server"
	FlagDescInterval  = "Refresh interval in minutes"
	FlagDescPassStdin = "Read the password from stdin"
	FlagDescKind      = "Interpretation set: pet or art_name"

	MsgVersionOutput  = "%s version %s (%s/%s)\n"
	MsgPasswordStored = "Password stored in the system keyring."
	MsgPasswordPrompt = "Password: "
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"it", "en"}

// -----------------------------------------------------------------------------
// Output Formats
// -----------------------------------------------------------------------------

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	JSONIndent = "  "
	YAMLIndent = 2
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb        = "web"
	SourceModeLocal      = "local"
	DefaultPort          = "18080"
	DefaultRefreshMin    = 60
	DefaultLanguage      = "it"
	DefaultFormat        = FormatTable
	DefaultMinBirthYear  = 1900
	MaxReferenceYear     = 9999
	DefaultReminderValue = 1
	UIDSalt              = "go-numerology-v1-" // Salt for deterministic UID generation
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTimePrefix     = "T"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Numerology//Engine//EN"
	ICalCalName   = "Numerologia"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gonumerology"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropCategories  = "CATEGORIES"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	CategoryQuadrimester = "QUADRIMESTRE"
	CategoryTrimester    = "TRIMESTRE"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// DateFormatInput accepts DD/MM/YYYY with optional leading zeros.
	DateFormatInput = "2/1/2006"
	// DateFormatDisplay is the DD/MM/YYYY layout used in reports and exports.
	DateFormatDisplay = "02/01/2006"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d-%s@%s"
)

// -----------------------------------------------------------------------------
// Numerology Labels (stable Italian report vocabulary)
// -----------------------------------------------------------------------------

const (
	FormatRawReduced    = "%d → %d"
	FormatSpecialMaster = "Maestro %d"
	FormatSpecialKarmic = "Karmico %d"
	FormatSpecialEntry  = "%s (%d(%s))"

	FormatPeriodFromBirth = "Dalla Nascita a %d anni"
	FormatPeriodRange     = "Da %d a %d anni"
	FormatPeriodOpen      = "Da %d anni in poi"

	CycleExperience = "Esperienza"
	CyclePower      = "Potere"
	CycleWisdom     = "Saggezza"

	SeasonSpring = "Primavera"
	SeasonSummer = "Estate"
	SeasonAutumn = "Autunno"
	SeasonWinter = "Inverno"

	FormatQuadrimesterLabel = "Q%d"
	FormatTrimesterLabel    = "T%d"

	// Positions reported in the Master/Karmic summary.
	PosExpression      = "Espressione"
	PosSoul            = "Anima"
	PosPersonality     = "Personalità"
	PosStrength        = "Forza (Destino)"
	PosStrengthShort   = "Forza"
	PosGift            = "Dono"
	PosLifePath1       = "Sentiero di Vita 1"
	PosLifePath2       = "Sentiero di Vita 2"
	PosQuintessence    = "Quintessenza"
	PosInitiation      = "Iniziazione"
	PosCyclePrefix     = "Ciclo "
	FormatPosPinnacle  = "Pinnacolo %d"
	FormatPosChallenge = "Sfida %d"
	PosUniversalYear   = "Anno Universale"
	PosPersonalYear    = "Anno Personale"

	SuffixWhole = " (intero)"
	SuffixFirst = " (rid. 1)"
	SuffixFinal = " (rid. 2)"
	SuffixR1    = " (r1)"
	SuffixR2    = " (r2)"
)

// -----------------------------------------------------------------------------
// Export Document Keys
// -----------------------------------------------------------------------------

const (
	KeyFullName       = "Nome Completo"
	KeyBirthDate      = "Data di Nascita"
	KeyReferenceYear  = "Anno Riferimento"
	KeyUniversalYear  = "Anno Universale (riduzione 2)"
	KeyPersonalYear   = "Anno Personale (riduzione 2)"
	KeyExpression     = "Numero Espressione (riduzione 2)"
	KeySoul           = "Numero Anima (riduzione 2)"
	KeyPersonality    = "Numero Personalita (riduzione 2)"
	KeyStrength       = "Numero Forza (riduzione 2)"
	KeyGift           = "Numero Dono (riduzione 2)"
	KeyLifePath1      = "Sentiero di Vita (Metodo 1 - riduzione 2)"
	KeyLifePath2      = "Sentiero di Vita (Metodo 2 - riduzione 2)"
	KeyQuintessence   = "Quintessenza (riduzione 2)"
	KeyInitiation     = "Iniziazione Spirituale (riduzione 2)"
	FormatKeyCycle    = "Ciclo %s (valore)"
	KeySpecials       = "Numeri Maestri/Karmici Rilevati"
	ValueNoSpecials   = "Nessuno"
	KeyCohesiveUnion  = "Unione Coesiva"
	KeyEnergeticUnion = "Unione Energetica"
	KeyInterconnect   = "Interconnessione Energetica"

	KeyUniversalYearWhole = "Anno Universale (intero)"
	KeyUniversalYearFirst = "Anno Universale (riduzione 1)"
	KeyPersonalYearWhole  = "Anno Personale (intero)"
	KeyPersonalYearFirst  = "Anno Personale (riduzione 1)"
	KeyExpressionWhole    = "Numero Espressione (intero)"
	KeyExpressionFirst    = "Numero Espressione (riduzione 1)"
	KeySoulWhole          = "Numero Anima (intero)"
	KeySoulFirst          = "Numero Anima (riduzione 1)"
	KeyPersonalityWhole   = "Numero Personalita (intero)"
	KeyPersonalityFirst   = "Numero Personalita (riduzione 1)"
	KeyStrengthWhole      = "Numero Forza (intero)"
	KeyStrengthFirst      = "Numero Forza (riduzione 1)"
	KeyGiftWhole          = "Numero Dono (intero)"
	KeyGiftFirst          = "Numero Dono (riduzione 1)"
	KeyLifePath1Whole     = "Sentiero di Vita (Metodo 1 - intero)"
	KeyLifePath1First     = "Sentiero di Vita (Metodo 1 - riduzione 1)"
	KeyLifePath2Whole     = "Sentiero di Vita (Metodo 2 - intero)"
	KeyLifePath2First     = "Sentiero di Vita (Metodo 2 - riduzione 1)"
	KeyQuintessenceWhole  = "Quintessenza (intero)"
	KeyQuintessenceFirst  = "Quintessenza (riduzione 1)"
	KeyInitiationWhole    = "Iniziazione Spirituale (intero)"
	KeyInitiationFirst    = "Iniziazione Spirituale (riduzione 1)"
	FormatKeyCyclePeriod  = "Ciclo %s (Periodo)"

	FormatKeyPinnacleWhole  = "Pinnacolo %d (intero)"
	FormatKeyPinnacleFirst  = "Pinnacolo %d (riduzione 1)"
	FormatKeyPinnacleFinal  = "Pinnacolo %d (ridotto)"
	FormatKeyPinnaclePeriod = "Pinnacolo %d (Periodo di Attivazione)"

	FormatKeyChallengeWhole  = "Sfida %d (intero)"
	FormatKeyChallengeFirst  = "Sfida %d (riduzione 1)"
	FormatKeyChallengeFinal  = "Sfida %d (ridotta)"
	FormatKeyChallengePeriod = "Sfida %d (Periodo di Attivazione)"

	KeyCalendarYear      = "anno_di_riferimento_calendario"
	KeyUniversalBase     = "anno_universale_base"
	KeyPersonalBase      = "anno_personale_base"
	KeyQuadrimesters     = "micro_cicli_quadrimestri_calendario"
	KeyTrimesters        = "micro_pinnacoli_sfide_trimestri_calendario"
	RowKeyQuadrimester   = "Q"
	RowKeyTrimester      = "Trimestre"
	RowKeyStart          = "Inizio"
	RowKeyEnd            = "Fine"
	RowKeyMicroCycle     = "Micro cicli annuali"
	RowKeyMicroPinnacle  = "Micro-Pinnacoli"
	RowKeyMicroChallenge = "MicroSfide"
)

// -----------------------------------------------------------------------------
// Curiosities
// -----------------------------------------------------------------------------

const (
	// PatternHouseNumber finds a civic number with an optional "n.", "nr." or
	// "civico" prefix and an optional "/x", "-x" or ".x" suffix.
	PatternHouseNumber = `(?i)\b(?:n(?:r)?\.?\s*|civico\s+)?(\d+(?:\s*[/.-]?\s*\w+)?)\b`
	// PatternSlashNumber splits "2/12" or "2/A" at the start of a civic number.
	PatternSlashNumber  = `^(\d+)\s*/\s*(\w+)`
	PatternSimpleNumber = `(?i)\b(?:n(?:r)?\.?\s*|civico\s+)?(\d+)\b`
	PatternCivicStrip   = `(?i)\b(?:n(?:r)?\.?\s*|civico\s+)?\d+\s*(?:[/.-]?\s*\w+)?\b`
	PatternPunctuation  = `[^\p{L}\p{N}_\s]`
	PatternSpaces       = `\s+`

	AddressSourceNumber = "number"
	AddressSourceStreet = "street"
)

// StreetStopWords are regexp fragments dropped, as whole words, from a street
// name before its letters are summed.
var StreetStopWords = []string{
	`via`, `piazza`, `corso`, `viale`, `strada`, `largo`, `vicolo`, `frazione`,
	`localita`, `podere`, `cascina`, `contrada`, `residence`, `complesso`,
	`villaggio`, `cs\s*casa`, `casa`,
}

// KarmicDebts are the raw totals reported as karmic debt bases.
var KarmicDebts = []int{13, 14, 16, 19}

// -----------------------------------------------------------------------------
// Compatibility Tables
// -----------------------------------------------------------------------------

const (
	TableLifePath     = "life_path"
	TableExpression   = "expression"
	TableSoul         = "soul"
	TablePersonality  = "personality"
	TableStrength     = "strength"
	TableQuintessence = "quintessence"
	TableCycles       = "cycles"
	TablePinnacles    = "pinnacles"
	TableChallenges   = "challenges"

	CompatPrefix        = "compat"
	CompatDefault       = "default"
	FormatCompatKey     = "%s.%s.%d_%d"
	FormatCompatDefault = "%s.%s.%s"
	FormatDigitKey      = "%s.%d"

	DigitTablePet        = "pet"
	DigitTableArtName    = "art_name"
	DigitTableKarmic     = "karmic"
	DigitTableAddress    = "address"
	DigitTableEnergy     = "energy"
	DigitTableEnergyInfo = "energy_detail"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEvtQuadrimester = "event_quadrimester" // Requires Name, Label, Value
	TKeyEvtTrimester    = "event_trimester"    // Requires Name, Label, Pinnacle, Challenge
	TKeyEvtDescription  = "event_description"  // Requires Start, End

	TKeyTitleMap           = "title_map"
	TKeyTitleTimeline      = "title_timeline"
	TKeyTitleQuadrimesters = "title_quadrimesters"
	TKeyTitleTrimesters    = "title_trimesters"
	TKeyTitleCompat        = "title_compat"
	TKeyTitleCompatDyn     = "title_compat_dynamic"
	TKeyTitleSpecials      = "title_specials"
	TKeyTitleEnergy        = "title_energy"
	TKeyTitleVibration     = "title_vibration"
	TKeyTitleAddress       = "title_address"
	TKeyTitleContacts      = "title_contacts"

	// Column Headers
	TKeyColKey            = "col_key"
	TKeyColValue          = "col_value"
	TKeyColAge            = "col_age"
	TKeyColYear           = "col_year"
	TKeyColUniversal      = "col_universal_year"
	TKeyColPersonal       = "col_personal_year"
	TKeyColCycle          = "col_cycle"
	TKeyColSeason         = "col_season"
	TKeyColPeriod         = "col_period"
	TKeyColPinnacle       = "col_pinnacle"
	TKeyColChallenge      = "col_challenge"
	TKeyColQuadrimester   = "col_quadrimester"
	TKeyColTrimester      = "col_trimester"
	TKeyColStart          = "col_start"
	TKeyColEnd            = "col_end"
	TKeyColMicroCycle     = "col_micro_cycle"
	TKeyColMicroPinnacle  = "col_micro_pinnacle"
	TKeyColMicroChallenge = "col_micro_challenge"
	TKeyColIndicator      = "col_indicator"
	TKeyColAnalysis       = "col_analysis"
	TKeyColPosition       = "col_position"
	TKeyColName           = "col_name"
	TKeyColDate           = "col_date"
	TKeyColLifePath       = "col_life_path"
	TKeyColActive         = "col_active"

	// Indicator names
	TKeyIndPrefix       = "ind_" // + table name
	TKeyIndLifePath     = "ind_life_path"
	TKeyIndExpression   = "ind_expression"
	TKeyIndSoul         = "ind_soul"
	TKeyIndPersonality  = "ind_personality"
	TKeyIndStrength     = "ind_strength"
	TKeyIndQuintessence = "ind_quintessence"

	// Compatibility headings and slot contexts
	TKeyCompatHeadingPrefix = "compat_heading."   // + table name
	TKeyCompatCtxCycle      = "compat_ctx_cycle." // + cycle index 1..3
	TKeyCompatCtxPinnacle   = "compat_ctx_pinnacle."
	TKeyCompatCtxChallenge  = "compat_ctx_challenge."
	TKeyCompatDisclaimer    = "compat_disclaimer"

	// Curiosities
	TKeyVibrationValue = "vibration_value" // Requires Name, Value
	TKeyKarmicBase     = "karmic_base"     // Requires Raw
	TKeyAddressValue   = "address_value"   // Requires Value
	TKeyAddressSource  = "address_source." // + "number" or "street"

	TKeyActiveNow = "active_now"
	TKeyNone      = "none"
)

// -----------------------------------------------------------------------------
// Terminal Rendering
// -----------------------------------------------------------------------------

const (
	// RenderWidth wraps free text paragraphs in terminal reports.
	RenderWidth = 100

	MarkActive   = "●"
	MarkMarkdown = "**"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	RouteCalendar       = "/calendar.ics"
	RouteProfiles       = "/profiles.json"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeVCard           = "text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrEmptyName       = "first and last name are required"
	ErrInvalidDate     = "invalid birth date (expected DD/MM/YYYY)"
	ErrFutureDate      = "birth date is in the future"
	ErrDateTooOld      = "birth date is before the minimum supported year"
	ErrLocalPathEmpty  = "configuration error: local path is empty"
	ErrWebURLEmpty     = "configuration error: web URL is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrModeUnsupport   = "configuration error: unsupported source mode"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrPortNumber      = "server port must be a number"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrRequestBuild    = "failed to create request"
	ErrNetwork         = "network error during fetch"
	ErrHTTPStatus      = "server returned unexpected status"
	ErrTooLarge        = "response exceeds the size limit"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsParse   = "failed to parse settings file"
	ErrParseEnv        = "parse env"
	ErrUnknownFormat   = "unsupported output format"
	ErrEncode          = "failed to encode document"
	ErrDecode          = "failed to decode document"
	ErrOutputFile      = "failed to write output file"
	ErrKeyringSet      = "failed to store password in keyring"
	ErrKeyringGet      = "failed to read password from keyring"
	ErrReminderUnit    = "unsupported reminder unit"
	ErrReminderDir     = "unsupported reminder direction"
	ErrMissingFlag     = "missing required flag"
	ErrVibrationKind   = "unknown vibration kind"
	ErrInvalidYear     = "invalid reference year"
	ErrNoContacts      = "no contact with a usable name and birth date"
	ErrProfileMarshal  = "failed to marshal profiles"
	ErrPasswordRead    = "failed to read password"
	ErrLanguageUnknown = "unsupported language"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgNotFound     = "Not Found"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackQuadrimester = "%s: %s %s"
	FallbackTrimester    = "%s: %s P%d S%d"
	FallbackDescription  = "%s - %s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgSyncStarted   = "Synchronization started..."
	MsgSyncFinished  = "Sync finished"
	MsgSyncFailed    = "Synchronization failed. Check logs."
	MsgSyncReq       = "Sync requested"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgUpdateSync    = "Updating sync interval"
	MsgAppStop       = "Application stopped gracefully"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedNoYear = "Skipping birthday without year"
	MsgSkippedPerson = "Skipping contact that fails validation"
	MsgGenSuccess    = "Profile generation successful"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Feed cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgDownloadStart = "Initiating vCard download"
	MsgDownloading   = "vCards downloading"
	MsgBadStatus     = "Server returned error status"
	MsgSettingsFile  = "Settings file loaded"
	MsgNoSettings    = "No settings file, using defaults"
	MsgProfileBuilt  = "Profile computed"
	MsgExported      = "Document written"
	MsgRequest       = "HTTP request served"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyProfiles  = "profiles"
	LogKeyEvents    = "events"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyYear      = "reference_year"
	LogKeyRoute     = "route"
	LogKeyDuration  = "duration_ms"
	LogKeyLength    = "content_length"
	LogKeyCommand   = "command"
	LogKeyMethod    = "method"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "build_date"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCLI     = "cli"
	CompConfig  = "config"
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompWorker  = "worker"
	CompMain    = "main"
	CompI18n    = "i18n"
)
