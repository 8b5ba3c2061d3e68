package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel builder с placeholder-ами в формате Postgres ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT запрос с Postgres placeholder-ами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT запрос с Postgres placeholder-ами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE запрос с Postgres placeholder-ами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE запрос с Postgres placeholder-ами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
