package skill

// Category names used by the built-in dictionary.
const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryDatabases  = "databases"
	CategoryCloud      = "cloud"
	CategoryTools      = "tools"
)

// Dictionary maps category -> canonical skill name -> match variants.
// Variants are matched case-insensitively as whole words.
type Dictionary map[string]map[string][]string

// DefaultDictionary returns the built-in categorized skill keywords.
func DefaultDictionary() Dictionary { return defaultDictionary }

var defaultDictionary = Dictionary{
	CategoryLanguages: {
		"Go":         {"go", "golang"},
		"Python":     {"python"},
		"JavaScript": {"javascript", "js"},
		"TypeScript": {"typescript"},
		"Java":       {"java"},
		"C++":        {"c++", "cpp"},
		"C#":         {"c#", "csharp"},
		"Ruby":       {"ruby"},
		"PHP":        {"php"},
		"Rust":       {"rust"},
		"Kotlin":     {"kotlin"},
		"Swift":      {"swift"},
		"Scala":      {"scala"},
		"SQL":        {"sql"},
		"HTML":       {"html", "html5"},
		"CSS":        {"css", "css3"},
	},
	CategoryFrameworks: {
		"React":   {"react", "reactjs", "react.js"},
		"Angular": {"angular", "angularjs"},
		"Vue":     {"vue", "vuejs", "vue.js"},
		"Node.js": {"node", "nodejs", "node.js"},
		"Django":  {"django"},
		"Flask":   {"flask"},
		"Spring":  {"spring", "spring boot"},
		"Express": {"express", "expressjs", "express.js"},
		"Rails":   {"rails", "ruby on rails"},
		".NET":    {".net", "dotnet", "asp.net"},
		"Laravel": {"laravel"},
		"Next.js": {"next.js", "nextjs"},
	},
	CategoryDatabases: {
		"PostgreSQL":    {"postgresql", "postgres"},
		"MySQL":         {"mysql"},
		"MongoDB":       {"mongodb", "mongo"},
		"Redis":         {"redis"},
		"SQLite":        {"sqlite"},
		"Elasticsearch": {"elasticsearch"},
		"Cassandra":     {"cassandra"},
		"DynamoDB":      {"dynamodb"},
		"Oracle":        {"oracle"},
	},
	CategoryCloud: {
		"AWS":        {"aws", "amazon web services"},
		"Azure":      {"azure"},
		"GCP":        {"gcp", "google cloud"},
		"Docker":     {"docker"},
		"Kubernetes": {"kubernetes", "k8s"},
		"Terraform":  {"terraform"},
		"Heroku":     {"heroku"},
		"Serverless": {"serverless", "lambda"},
	},
	CategoryTools: {
		"Git":      {"git"},
		"Jenkins":  {"jenkins"},
		"Jira":     {"jira"},
		"Linux":    {"linux", "unix"},
		"GraphQL":  {"graphql"},
		"REST":     {"rest", "restful"},
		"gRPC":     {"grpc"},
		"Kafka":    {"kafka"},
		"RabbitMQ": {"rabbitmq"},
		"CI/CD":    {"ci/cd", "cicd", "continuous integration"},
	},
}

// bundle is a predefined technology stack used to suggest complementary
// skills when a document covers only part of one.
type bundle struct {
	name    string
	members []string
}

var stackBundles = []bundle{
	{"frontend web stack", []string{"React", "JavaScript", "CSS"}},
	{"Node.js backend stack", []string{"Node.js", "Express", "MongoDB"}},
	{"Python web stack", []string{"Python", "Django", "PostgreSQL"}},
	{"Go services stack", []string{"Go", "PostgreSQL", "Docker"}},
	{"Java enterprise stack", []string{"Java", "Spring", "MySQL"}},
	{"cloud-native stack", []string{"Docker", "Kubernetes", "AWS"}},
}
