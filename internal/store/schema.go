package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	categoriesTable = "categories"
	wordsTable      = "words"
	sentencesTable  = "example_sentences"
	llmEventsTable  = "llm_events"
	practiceTable   = "practice_events"
	metaTable       = "content_meta"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "translated_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       categoriesTable,
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}

	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString, Default: ""},
		{Name: "source_lang", Type: field.TypeString, Size: 16},
		{Name: "target_lang", Type: field.TypeString, Size: 16},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       wordsTable,
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "words_categories_words",
				Columns:    []*schema.Column{WordsColumns[7]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "word_category_id_text",
				Unique:  true,
				Columns: []*schema.Column{WordsColumns[7], WordsColumns[1]},
			},
			{
				Name:    "word_category_id_difficulty",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[7], WordsColumns[5]},
			},
		},
	}

	// SentencesColumns holds the columns for the "example_sentences" table.
	SentencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 1024},
		{Name: "translation", Type: field.TypeString, Size: 1024, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "word_id", Type: field.TypeInt},
	}
	// SentencesTable holds the schema information for the "example_sentences" table.
	SentencesTable = &schema.Table{
		Name:       sentencesTable,
		Columns:    SentencesColumns,
		PrimaryKey: []*schema.Column{SentencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "example_sentences_words_sentences",
				Columns:    []*schema.Column{SentencesColumns[4]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "examplesentence_word_id",
				Columns: []*schema.Column{SentencesColumns[4]},
			},
		},
	}

	// LLMEventsColumns holds the columns for the "llm_events" table.
	LLMEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LLMEventsTable holds the schema information for the "llm_events" table.
	LLMEventsTable = &schema.Table{
		Name:       llmEventsTable,
		Columns:    LLMEventsColumns,
		PrimaryKey: []*schema.Column{LLMEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmevent_purpose", Columns: []*schema.Column{LLMEventsColumns[4]}},
			{Name: "llmevent_success", Columns: []*schema.Column{LLMEventsColumns[8]}},
		},
	}

	// PracticeColumns holds the columns for the "practice_events" table.
	PracticeColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"EASY", "MEDIUM", "HARD"}},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"VOCAB", "COMPLETION"}},
		{Name: "requested", Type: field.TypeInt},
		{Name: "live", Type: field.TypeInt},
		{Name: "fallback", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "answered", Type: field.TypeInt, Default: 0},
	}
	// PracticeTable holds the schema information for the "practice_events" table.
	PracticeTable = &schema.Table{
		Name:       practiceTable,
		Columns:    PracticeColumns,
		PrimaryKey: []*schema.Column{PracticeColumns[0]},
		Indexes: []*schema.Index{
			{Name: "practiceevent_timestamp", Columns: []*schema.Column{PracticeColumns[1]}},
		},
	}

	// MetaColumns holds the columns for the "content_meta" table.
	MetaColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString, Size: 64},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MetaTable holds the schema information for the "content_meta" table.
	MetaTable = &schema.Table{
		Name:       metaTable,
		Columns:    MetaColumns,
		PrimaryKey: []*schema.Column{MetaColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		WordsTable,
		SentencesTable,
		LLMEventsTable,
		PracticeTable,
		MetaTable,
	}
)

func init() {
	WordsTable.ForeignKeys[0].RefTable = CategoriesTable
	SentencesTable.ForeignKeys[0].RefTable = WordsTable
}
