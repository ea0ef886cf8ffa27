package main

// samplePLZ spreads across every postal region and is the default input of
// the coverage command.
var samplePLZ = []string{
	"01067", "01277", "04109", "04179", "06108", "06132", "10115", "10245", "10439", "10587",
	"10709", "10997", "13051", "13507", "14057", "14467", "14532", "14776", "15230", "15517",
	"17033", "17489", "18055", "18109", "19053", "20095", "20253", "21073", "22041", "22761",
	"23552", "24103", "24937", "25813", "26122", "26603", "26789", "27568", "28195", "28359",
	"28757", "29221", "30159", "30449", "30823", "31224", "32052", "32423", "33098", "33602",
	"34117", "34497", "35390", "36037", "37073", "38100", "38440", "39104", "39576", "40213",
	"40476", "41061", "42103", "42651", "44135", "44787", "45127", "45879", "46236", "47051",
	"47798", "48143", "49074", "49477", "50667", "50825", "51373", "52062", "53111", "54290",
	"55116", "56068", "57072", "58095", "59065", "60311", "60599", "64283", "65183", "66111",
	"68159", "69117", "70173", "70565", "72070", "72764", "73430", "74072", "80331", "93047",
}
