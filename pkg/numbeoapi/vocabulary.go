package numbeoapi

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// VocabularyURI identifies the glossary resource
const VocabularyURI = "vocabulary://numbeo-terms"

// Vocabulary explains the terms used in API responses
const Vocabulary = `This is the explanation of the terms used:
contributors12months: The number of contributors who have submitted data in the past 12 months
monthLastUpdate: The month when the data was last updated
yearLastUpdate: The year of the last update
contributors: The total number of contributors whose data was used in the calculations (as we use an adaptive archive policy)
cpi_factor: A factor used to calculate our Consumer Price Index. Multiply this factor by the prices and add the result to the overall sum to compute the Cost of Living Index.
rent_factor: A factor used to calculate our Rent Index. Multiply this factor by the prices and add the result to the overall sum to compute the Rent Index.`
